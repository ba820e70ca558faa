// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surfaces

import "slices"

// Evaluate returns a field that samples every field in fs at the query point
// and passes the results, in order, to h.
//
// h receives exactly len(fs) values. Prefer Evaluate2, Evaluate3 or Evaluate4
// when the arity is known, since they check it at compile time.
func Evaluate(h func(vs ...float64) float64, fs ...Field) Field {
	return evaluated{h: h, fs: slices.Clone(fs)}
}

type evaluated struct {
	h  func(vs ...float64) float64
	fs []Field
}

func (e evaluated) At(p Point) float64 {
	vs := make([]float64, len(e.fs))
	for i, f := range e.fs {
		vs[i] = f.At(p)
	}
	return e.h(vs...)
}

// Evaluate2 returns p -> h(f1(p), f2(p)).
func Evaluate2(h func(a, b float64) float64, f1, f2 Field) Field {
	return FieldFunc(func(p Point) float64 {
		return h(f1.At(p), f2.At(p))
	})
}

// Evaluate3 returns p -> h(f1(p), f2(p), f3(p)).
func Evaluate3(h func(a, b, c float64) float64, f1, f2, f3 Field) Field {
	return FieldFunc(func(p Point) float64 {
		return h(f1.At(p), f2.At(p), f3.At(p))
	})
}

// Evaluate4 returns p -> h(f1(p), f2(p), f3(p), f4(p)).
func Evaluate4(h func(a, b, c, d float64) float64, f1, f2, f3, f4 Field) Field {
	return FieldFunc(func(p Point) float64 {
		return h(f1.At(p), f2.At(p), f3.At(p), f4.At(p))
	})
}

// Compose chains fs left to right: Compose(f, g, h)(x) == h(g(f(x))).
// With no stages it returns the identity function.
func Compose[T any](fs ...func(T) T) func(T) T {
	if len(fs) == 0 {
		return func(v T) T { return v }
	}
	if len(fs) == 1 {
		return fs[0]
	}
	stages := slices.Clone(fs)
	return func(v T) T {
		for _, f := range stages {
			v = f(v)
		}
		return v
	}
}

// Compose2 chains two functions whose types differ: Compose2(f, g)(x) == g(f(x)).
func Compose2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C { return g(f(a)) }
}

// Compose3 chains three functions: Compose3(f, g, h)(x) == h(g(f(x))).
func Compose3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D { return h(g(f(a))) }
}

// Pipe feeds the output of f through stages, left to right.
func Pipe(f Field, stages ...func(float64) float64) Field {
	chain := Compose(stages...)
	return FieldFunc(func(p Point) float64 {
		return chain(f.At(p))
	})
}
