// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surfaces

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise returns a smooth OpenSimplex noise field with feature size s,
// normalized to [0, 1]. Equal seeds produce equal fields.
// A non-positive s yields the zero field.
func Noise(seed int64, s float64) Field {
	return Octaves(seed, s, 1, 0.5)
}

// Octaves returns fractal noise built by layering n octaves of OpenSimplex
// noise, each at twice the frequency and persistence times the amplitude of
// the previous one. For non-negative persistence the result stays within [0, 1].
// A non-positive s or n yields the zero field.
func Octaves(seed int64, s float64, n int, persistence float64) Field {
	if s <= 0 || n <= 0 {
		return plain{}
	}
	return octaves{
		noise:       opensimplex.NewNormalized(seed),
		freq:        1 / s,
		n:           n,
		persistence: persistence,
	}
}

// octaves holds a generator whose permutation tables are read-only after
// construction, so sharing it between goroutines is safe.
type octaves struct {
	noise       opensimplex.Noise
	freq        float64
	n           int
	persistence float64
}

func (o octaves) At(p Point) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	freq := o.freq

	for i := 0; i < o.n; i++ {
		total += o.noise.Eval2(p.X*freq, p.Y*freq) * amplitude
		maxVal += amplitude
		amplitude *= o.persistence
		freq *= 2
	}

	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}
