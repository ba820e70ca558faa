// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surfaces

import (
	"math"
	"strconv"
	"testing"
)

func TestCompose_Empty(t *testing.T) {
	id := Compose[float64]()
	for _, v := range []float64{0, -1, 3.25, math.Inf(1)} {
		if got := id(v); got != v {
			t.Errorf("Compose()(%v) = %v, want %v", v, got, v)
		}
	}
	if got := Compose[string]()("unchanged"); got != "unchanged" {
		t.Errorf("Compose()(%q) = %q", "unchanged", got)
	}
	p := Pt(1, 2)
	if got := Compose[Point]()(p); got != p {
		t.Errorf("Compose()(%v) = %v", p, got)
	}
}

func TestCompose_Order(t *testing.T) {
	inc := func(v int) int { return v + 1 }
	dbl := func(v int) int { return v * 2 }
	neg := func(v int) int { return -v }

	tests := []struct {
		name string
		fs   []func(int) int
		in   int
		want int
	}{
		{"single", []func(int) int{inc}, 1, 2},
		{"inc then dbl", []func(int) int{inc, dbl}, 1, 4},
		{"dbl then inc", []func(int) int{dbl, inc}, 1, 3},
		{"three", []func(int) int{inc, dbl, neg}, 4, -10},
		{"long", []func(int) int{inc, inc, inc, dbl, inc}, 0, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compose(tt.fs...)(tt.in); got != tt.want {
				t.Errorf("Compose(...)(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompose_StagesCopied(t *testing.T) {
	fs := []func(int) int{
		func(v int) int { return v + 1 },
		func(v int) int { return v * 10 },
	}
	c := Compose(fs...)
	fs[1] = func(v int) int { return 0 }
	if got := c(1); got != 20 {
		t.Errorf("Compose result changed after caller mutated its slice: got %d, want 20", got)
	}
}

func TestCompose_Heterogeneous(t *testing.T) {
	digits := Compose2(strconv.Itoa, func(s string) int { return len(s) })
	if got := digits(12345); got != 5 {
		t.Errorf("Compose2(Itoa, len)(12345) = %d, want 5", got)
	}

	sample := Compose3(
		func(x float64) Point { return Pt(x, 0) },
		Checker(1).At,
		func(v float64) bool { return v == 1 },
	)
	if !sample(0) {
		t.Error("Compose3 chain: checker at origin should be set")
	}
	if sample(1.5) {
		t.Error("Compose3 chain: checker at 1.5 0 should be clear")
	}
}

func TestEvaluate(t *testing.T) {
	f1, f2 := Slope(), Invert(Slope())
	sub := func(a, b float64) float64 { return a - b }

	e2 := Evaluate2(sub, f1, f2)
	ev := Evaluate(func(vs ...float64) float64 { return sub(vs[0], vs[1]) }, f1, f2)
	for _, p := range samplePoints {
		want := sub(f1.At(p), f2.At(p))
		if got := e2.At(p); got != want {
			t.Errorf("Evaluate2.At(%v) = %v, want %v", p, got, want)
		}
		if got := ev.At(p); got != want {
			t.Errorf("Evaluate.At(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestEvaluate_Arity(t *testing.T) {
	p := Pt(2, 3)
	e3 := Evaluate3(func(a, b, c float64) float64 { return a*100 + b*10 + c }, Slope(), Invert(Slope()), Add(Plain(), 1))
	if got := e3.At(p); got != 231 {
		t.Errorf("Evaluate3.At = %v, want 231", got)
	}
	e4 := Evaluate4(func(a, b, c, d float64) float64 { return a + b + c + d }, Slope(), Slope(), Slope(), Sqr())
	if got := e4.At(p); got != 10 {
		t.Errorf("Evaluate4.At = %v, want 10", got)
	}
	var n int
	e0 := Evaluate(func(vs ...float64) float64 {
		n = len(vs)
		return 42
	})
	if got := e0.At(p); got != 42 || n != 0 {
		t.Errorf("Evaluate with no fields: got %v with %d values", got, n)
	}
}

func TestPipe(t *testing.T) {
	f := Pipe(Slope(), math.Abs, func(v float64) float64 { return v + 1 })
	if got := f.At(Pt(-3, 0)); got != 4 {
		t.Errorf("Pipe.At(-3 0) = %v, want 4", got)
	}
	if got := Pipe(Slope()).At(Pt(-3, 0)); got != -3 {
		t.Errorf("Pipe without stages = %v, want -3", got)
	}
}

func TestBlend(t *testing.T) {
	p := Pt(2, 5)
	tests := []struct {
		name string
		f    Field
		want float64
	}{
		{"sum", Sum(Slope(), Invert(Slope()), Add(Plain(), 1)), 8},
		{"sum empty", Sum(), 0},
		{"product", Product(Slope(), Invert(Slope())), 10},
		{"product empty", Product(), 1},
		{"max", Max(Slope(), Invert(Slope())), 5},
		{"min", Min(Slope(), Invert(Slope())), 2},
		{"mix start", Mix(Slope(), Invert(Slope()), Plain()), 2},
		{"mix end", Mix(Slope(), Invert(Slope()), Add(Plain(), 1)), 5},
		{"mix half", Mix(Slope(), Invert(Slope()), Add(Plain(), 0.5)), 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.At(p); got != tt.want {
				t.Errorf("At(%v) = %v, want %v", p, got, tt.want)
			}
		})
	}
}

func TestBlend_MaskUnion(t *testing.T) {
	// Unit discs centred at (-2, 0) and (2, 0).
	left := Translate(Ellipse(1, 1), Pt(2, 0))
	right := Flip(left)
	u := Max(left, right)
	i := Min(left, right)
	for _, tc := range []struct {
		p          Point
		union, and float64
	}{
		{Pt(-2, 0), 1, 0},
		{Pt(2, 0), 1, 0},
		{Pt(0, 0), 0, 0},
	} {
		if got := u.At(tc.p); got != tc.union {
			t.Errorf("union.At(%v) = %v, want %v", tc.p, got, tc.union)
		}
		if got := i.At(tc.p); got != tc.and {
			t.Errorf("intersection.At(%v) = %v, want %v", tc.p, got, tc.and)
		}
	}
}

func TestCheckerScenario(t *testing.T) {
	if got := Checker(1).At(Pt(0, 0)); got != 1 {
		t.Errorf("Checker(1).At(0 0) = %v, want 1", got)
	}
	if got := Checker(1).At(Pt(1.5, 0)); got != 0 {
		t.Errorf("Checker(1).At(1.5 0) = %v, want 0", got)
	}
}
