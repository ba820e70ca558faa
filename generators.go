// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surfaces

import "math"

// Plain returns the constant zero field.
func Plain() Field { return plain{} }

type plain struct{}

func (plain) At(Point) float64 { return 0 }

// Slope returns the field whose value is the x coordinate.
func Slope() Field { return slope{} }

type slope struct{}

func (slope) At(p Point) float64 { return p.X }

// Steps returns floor(x/s). A non-positive s yields the zero field.
func Steps(s float64) Field { return steps{s: s} }

type steps struct{ s float64 }

func (f steps) At(p Point) float64 {
	if f.s <= 0 {
		return 0
	}
	return math.Floor(p.X / f.s)
}

// Checker returns a checkerboard of s-sized cells taking values 0 and 1.
// The cell containing the origin's upper-right quadrant is 1.
// A non-positive s yields the zero field.
func Checker(s float64) Field { return checker{s: s} }

type checker struct{ s float64 }

func (f checker) At(p Point) float64 {
	if f.s <= 0 {
		return 0
	}
	return math.Mod(math.Abs(math.Floor(p.X/f.s))+math.Abs(math.Floor(p.Y/f.s)+1), 2)
}

// Sqr returns x*x.
func Sqr() Field { return sqr{} }

type sqr struct{}

func (sqr) At(p Point) float64 { return p.X * p.X }

// SinWave returns sin(x).
func SinWave() Field { return sinWave{} }

type sinWave struct{}

func (sinWave) At(p Point) float64 { return math.Sin(p.X) }

// CosWave returns cos(x).
func CosWave() Field { return cosWave{} }

type cosWave struct{}

func (cosWave) At(p Point) float64 { return math.Cos(p.X) }

// Rings returns concentric bands of width s around the origin alternating
// between 1 and 0. The origin itself is 1. A non-positive s yields the zero field.
func Rings(s float64) Field { return rings{s: s} }

type rings struct{ s float64 }

func (f rings) At(p Point) float64 {
	switch {
	case f.s <= 0:
		return 0
	case p.IsZero():
		return 1
	}
	return math.Mod(math.Ceil(math.Sqrt(p.X*p.X+p.Y*p.Y)/f.s), 2)
}

// Ellipse returns 1 inside the axis-aligned ellipse with semi-axes a (along x)
// and b (along y), boundary included, and 0 outside.
// A non-positive a or b yields the zero field.
func Ellipse(a, b float64) Field { return ellipse{a: a, b: b} }

type ellipse struct{ a, b float64 }

func (f ellipse) At(p Point) float64 {
	if f.a <= 0 || f.b <= 0 {
		return 0
	}
	if p.X*p.X/(f.a*f.a)+p.Y*p.Y/(f.b*f.b) <= 1 {
		return 1
	}
	return 0
}

// Rectangle returns 1 inside the origin-centred rectangle and 0 outside,
// boundary included. Note the axis order: b is the half-width along x and
// a the half-height along y, the reverse of Ellipse. Callers rely on this.
// A non-positive a or b yields the zero field.
func Rectangle(a, b float64) Field { return rectangle{a: a, b: b} }

type rectangle struct{ a, b float64 }

func (f rectangle) At(p Point) float64 {
	if f.a <= 0 || f.b <= 0 {
		return 0
	}
	hx, hy := math.Abs(f.b), math.Abs(f.a)
	if -hx <= p.X && p.X <= hx && -hy <= p.Y && p.Y <= hy {
		return 1
	}
	return 0
}

// Stripes returns vertical stripes of width s alternating between 0 and 1.
// A non-positive s yields the zero field.
func Stripes(s float64) Field { return stripes{s: s} }

type stripes struct{ s float64 }

func (f stripes) At(p Point) float64 {
	if f.s <= 0 {
		return 0
	}
	return math.Abs(math.Mod(math.Ceil(p.X/f.s), 2))
}
