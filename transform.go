// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surfaces

import "math"

// Rotate returns f rotated clockwise by deg degrees.
// The field is rotated by sampling f at the query point rotated by -deg.
func Rotate(f Field, deg float64) Field {
	sin, cos := math.Sincos(-deg * math.Pi / 180)
	return rotated{f: f, sin: sin, cos: cos}
}

type rotated struct {
	f        Field
	sin, cos float64
}

func (r rotated) At(p Point) float64 {
	return r.f.At(Point{
		X: p.X*r.cos - p.Y*r.sin,
		Y: p.X*r.sin + p.Y*r.cos,
	})
}

// Translate returns f sampled at p offset by |v.X| and |v.Y|.
// The offset is always applied in the positive direction on both axes
// regardless of the sign of v; existing definitions depend on that.
func Translate(f Field, v Point) Field {
	return translated{f: f, v: v.Abs()}
}

type translated struct {
	f Field
	v Point
}

func (t translated) At(p Point) float64 {
	return t.f.At(p.Add(t.v))
}

// Scale returns f stretched by s.X horizontally and s.Y vertically.
// A zero component is not guarded: the division yields ±Inf or NaN
// and f is sampled there.
func Scale(f Field, s Point) Field {
	return scaled{f: f, s: s}
}

type scaled struct {
	f Field
	s Point
}

func (t scaled) At(p Point) float64 {
	return t.f.At(Point{X: p.X / t.s.X, Y: p.Y / t.s.Y})
}

// Invert reflects f across the diagonal by swapping x and y.
// Invert(Invert(f)) returns f.
func Invert(f Field) Field {
	if in, ok := f.(inverted); ok {
		return in.f
	}
	return inverted{f: f}
}

type inverted struct{ f Field }

func (t inverted) At(p Point) float64 {
	return t.f.At(p.Swap())
}

// Flip mirrors f across the y axis. Flip(Flip(f)) returns f.
func Flip(f Field) Field {
	if fl, ok := f.(flipped); ok {
		return fl.f
	}
	return flipped{f: f}
}

type flipped struct{ f Field }

func (t flipped) At(p Point) float64 {
	return t.f.At(Point{X: -p.X, Y: p.Y})
}

// Mul returns f with its output multiplied by c.
func Mul(f Field, c float64) Field {
	return multiplied{f: f, c: c}
}

type multiplied struct {
	f Field
	c float64
}

func (t multiplied) At(p Point) float64 {
	return t.f.At(p) * t.c
}

// Add returns f with c added to its output.
func Add(f Field, c float64) Field {
	return offset{f: f, c: c}
}

type offset struct {
	f Field
	c float64
}

func (t offset) At(p Point) float64 {
	return t.f.At(p) + t.c
}
