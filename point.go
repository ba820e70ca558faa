// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surfaces

import (
	"math"
	"strconv"
)

// Point is an immutable 2D sample position.
// Points are plain values; every operation returns a new Point.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// textPrecision is the number of significant digits written by String.
const textPrecision = 6

// String renders the point as its two coordinates separated by a single space,
// e.g. "1.5 -2". Each coordinate is written in %g form with six significant
// digits, so 1.0/3 renders as 0.333333 and 1234567 as 1.23457e+06.
func (p Point) String() string {
	b := make([]byte, 0, 32)
	b = strconv.AppendFloat(b, p.X, 'g', textPrecision, 64)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, p.Y, 'g', textPrecision, 64)
	return string(b)
}

// Add returns the componentwise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Abs returns the point with both coordinates made non-negative.
func (p Point) Abs() Point {
	return Point{X: math.Abs(p.X), Y: math.Abs(p.Y)}
}

// Swap exchanges the coordinates.
func (p Point) Swap() Point {
	return Point{X: p.Y, Y: p.X}
}

// Rotate returns the point rotated by angle radians around the origin
// (counter-clockwise for positive angles).
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Length returns the distance from the origin.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// IsZero reports whether p is exactly the origin.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Approx returns true if two points are approximately equal within epsilon.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}
