// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fielddef

import (
	"fmt"
	"math"

	"github.com/gogpu/surfaces"
)

// RegisterBuiltins registers the generators and combinators of package
// surfaces with r. The global registry already contains them.
func RegisterBuiltins(r *Registry) {
	constant := func(name string, f func() surfaces.Field) {
		r.Register(Entry{Name: name, Factory: func(Params, []surfaces.Field) (surfaces.Field, error) {
			return f(), nil
		}})
	}
	constant("plain", surfaces.Plain)
	constant("slope", surfaces.Slope)
	constant("sqr", surfaces.Sqr)
	constant("sin_wave", surfaces.SinWave)
	constant("cos_wave", surfaces.CosWave)

	scaled := func(name string, f func(s float64) surfaces.Field) {
		r.Register(Entry{Name: name, Params: []string{"s"}, Factory: func(p Params, _ []surfaces.Field) (surfaces.Field, error) {
			return f(p.Get("s", surfaces.DefaultScale)), nil
		}})
	}
	scaled("steps", surfaces.Steps)
	scaled("checker", surfaces.Checker)
	scaled("rings", surfaces.Rings)
	scaled("stripes", surfaces.Stripes)

	extent := func(name string, f func(a, b float64) surfaces.Field) {
		r.Register(Entry{Name: name, Params: []string{"a", "b"}, Factory: func(p Params, _ []surfaces.Field) (surfaces.Field, error) {
			return f(p.Get("a", surfaces.DefaultScale), p.Get("b", surfaces.DefaultScale)), nil
		}})
	}
	extent("ellipse", surfaces.Ellipse)
	extent("rectangle", surfaces.Rectangle)

	r.Register(Entry{Name: "noise", Params: []string{"seed", "s"}, Factory: func(p Params, _ []surfaces.Field) (surfaces.Field, error) {
		seed, err := integer(p, "seed", 0, minSeed, maxSeed)
		if err != nil {
			return nil, err
		}
		return surfaces.Noise(int64(seed), p.Get("s", surfaces.DefaultScale)), nil
	}})
	r.Register(Entry{Name: "octaves", Params: []string{"seed", "s", "n", "persistence"}, Factory: func(p Params, _ []surfaces.Field) (surfaces.Field, error) {
		seed, err := integer(p, "seed", 0, minSeed, maxSeed)
		if err != nil {
			return nil, err
		}
		n, err := integer(p, "n", 4, 0, MaxOctaves)
		if err != nil {
			return nil, err
		}
		return surfaces.Octaves(int64(seed), p.Get("s", surfaces.DefaultScale), int(n), p.Get("persistence", 0.5)), nil
	}})

	unary := func(name string, params []string, f func(p Params, in surfaces.Field) surfaces.Field) {
		r.Register(Entry{Name: name, MinArgs: 1, MaxArgs: 1, Params: params, Factory: func(p Params, args []surfaces.Field) (surfaces.Field, error) {
			return f(p, args[0]), nil
		}})
	}
	unary("rotate", []string{"deg"}, func(p Params, in surfaces.Field) surfaces.Field {
		return surfaces.Rotate(in, p.Get("deg", 0))
	})
	unary("translate", []string{"x", "y"}, func(p Params, in surfaces.Field) surfaces.Field {
		return surfaces.Translate(in, surfaces.Pt(p.Get("x", 0), p.Get("y", 0)))
	})
	unary("scale", []string{"x", "y"}, func(p Params, in surfaces.Field) surfaces.Field {
		return surfaces.Scale(in, surfaces.Pt(p.Get("x", surfaces.DefaultScale), p.Get("y", surfaces.DefaultScale)))
	})
	unary("invert", nil, func(_ Params, in surfaces.Field) surfaces.Field {
		return surfaces.Invert(in)
	})
	unary("flip", nil, func(_ Params, in surfaces.Field) surfaces.Field {
		return surfaces.Flip(in)
	})
	unary("mul", []string{"c"}, func(p Params, in surfaces.Field) surfaces.Field {
		return surfaces.Mul(in, p.Get("c", 1))
	})
	unary("add", []string{"c"}, func(p Params, in surfaces.Field) surfaces.Field {
		return surfaces.Add(in, p.Get("c", 0))
	})
	unary("affine", []string{"a", "b", "c", "d", "e", "f"}, func(p Params, in surfaces.Field) surfaces.Field {
		return surfaces.Affine(in, surfaces.Matrix{
			A: p.Get("a", 1), B: p.Get("b", 0), C: p.Get("c", 0),
			D: p.Get("d", 0), E: p.Get("e", 1), F: p.Get("f", 0),
		})
	})

	r.Register(Entry{Name: "sum", MinArgs: 1, MaxArgs: Variadic, Factory: func(_ Params, args []surfaces.Field) (surfaces.Field, error) {
		return surfaces.Sum(args...), nil
	}})
	r.Register(Entry{Name: "product", MinArgs: 1, MaxArgs: Variadic, Factory: func(_ Params, args []surfaces.Field) (surfaces.Field, error) {
		return surfaces.Product(args...), nil
	}})
	r.Register(Entry{Name: "max", MinArgs: 2, MaxArgs: 2, Factory: func(_ Params, args []surfaces.Field) (surfaces.Field, error) {
		return surfaces.Max(args[0], args[1]), nil
	}})
	r.Register(Entry{Name: "min", MinArgs: 2, MaxArgs: 2, Factory: func(_ Params, args []surfaces.Field) (surfaces.Field, error) {
		return surfaces.Min(args[0], args[1]), nil
	}})
	r.Register(Entry{Name: "mix", MinArgs: 3, MaxArgs: 3, Factory: func(_ Params, args []surfaces.Field) (surfaces.Field, error) {
		return surfaces.Mix(args[0], args[1], args[2]), nil
	}})
}

// MaxOctaves is the largest octave count accepted by the octaves kind.
const MaxOctaves = 32

// Seeds must fit an int64; 2^63 itself is out of range.
const (
	minSeed = -(1 << 63)
	maxSeed = 1<<63 - 1024
)

// integer reads a parameter that must hold a whole number in [lo, hi].
func integer(p Params, name string, def, lo, hi float64) (float64, error) {
	v := p.Get(name, def)
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parameter %q must be an integer, got %v", name, v)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("parameter %q must be between %v and %v, got %v", name, lo, hi, v)
	}
	return v, nil
}
