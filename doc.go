// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surfaces provides an algebra of scalar fields over the plane.
//
// # Overview
//
// A [Field] maps a [Point] to a real number. Generators build base fields
// from numeric parameters (stripes, rings, checkers, ellipses, noise) and
// combinators reshape them by remapping the query point before delegating
// (Rotate, Translate, Scale, Invert, Flip, Affine) or by adjusting the
// returned value (Mul, Add). Evaluate samples several fields at one point
// and merges the results with a host function; Compose chains functions
// into a pipeline.
//
// # Quick Start
//
//	import "github.com/gogpu/surfaces"
//
//	board := surfaces.Checker(0.5)
//	tilted := surfaces.Rotate(board, 30)
//	disc := surfaces.Ellipse(2, 2)
//	masked := surfaces.Min(tilted, disc)
//
//	v := masked.At(surfaces.Pt(0.25, 0.75))
//
// # Degenerate parameters
//
// Fields never fail. A non-positive scale or extent yields the zero field,
// and Rings is 1 at the origin. Scale is the one exception: a zero factor is
// divided through unguarded, producing non-finite sample coordinates.
//
// # Concurrency
//
// Fields are immutable values and may be evaluated from any number of
// goroutines. [SampleParallel] evaluates a field over many points at once.
//
// # Coordinate System
//
// Angles passed to Rotate are in degrees and turn the field clockwise in
// y-down (screen) coordinates.
package surfaces

// Version is the current version of the library.
const Version = "0.1.0"
