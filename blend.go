// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surfaces

import "math"

// Sum returns the pointwise sum of fs. With no fields it is the zero field.
func Sum(fs ...Field) Field {
	return Evaluate(func(vs ...float64) float64 {
		var s float64
		for _, v := range vs {
			s += v
		}
		return s
	}, fs...)
}

// Product returns the pointwise product of fs. With no fields it is the constant 1.
func Product(fs ...Field) Field {
	return Evaluate(func(vs ...float64) float64 {
		s := 1.0
		for _, v := range vs {
			s *= v
		}
		return s
	}, fs...)
}

// Max returns the pointwise maximum of f and g. On 0/1 masks this is the union.
func Max(f, g Field) Field {
	return Evaluate2(math.Max, f, g)
}

// Min returns the pointwise minimum of f and g. On 0/1 masks this is the intersection.
func Min(f, g Field) Field {
	return Evaluate2(math.Min, f, g)
}

// Mix linearly interpolates between f and g using t sampled at the same point:
// t == 0 yields f, t == 1 yields g.
func Mix(f, g, t Field) Field {
	return Evaluate3(func(a, b, w float64) float64 {
		return a + (b-a)*w
	}, f, g, t)
}
