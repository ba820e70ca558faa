// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fielddef builds surfaces.Field values from declarative definitions.
//
// A definition is a tree of nodes. Each node names a registered kind, gives
// its numeric parameters and lists the nodes it wraps:
//
//	kind: min
//	args:
//	  - kind: rotate
//	    params: {deg: 30}
//	    args:
//	      - kind: checker
//	        params: {s: 0.5}
//	  - kind: ellipse
//	    params: {a: 2, b: 2}
//
// Omitted scale and extent parameters default to surfaces.DefaultScale.
// An affine node may give its matrix as one list instead of named parameters:
//
//	kind: affine
//	aff3: [0, -1, 0, 1, 0, 0]
//	args:
//	  - kind: stripes
// Every generator and combinator of package surfaces is registered under its
// snake_case name (checker, sin_wave, rotate, ...); applications may register
// their own kinds with Register.
package fielddef
