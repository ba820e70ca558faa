// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surfaces

// Field is a scalar field over the plane: it maps a Point to a real value.
//
// Every Field produced by this package is an immutable value with no
// internal state, so At may be called concurrently from any number of
// goroutines. Fields are total: degenerate parameters resolve to defined
// sentinel values instead of errors.
type Field interface {
	// At returns the field value at p.
	At(p Point) float64
}

// FieldFunc adapts an ordinary function to the Field interface.
type FieldFunc func(p Point) float64

// At implements Field.
func (f FieldFunc) At(p Point) float64 {
	return f(p)
}

// DefaultScale is the scale or extent used for generators whose parameter
// is omitted in a field definition.
const DefaultScale = 1.0
