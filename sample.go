// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surfaces

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrLengthMismatch is returned when a sampling destination does not have
// one slot per point.
var ErrLengthMismatch = errors.New("surfaces: destination length does not match point count")

// minChunk is the smallest number of points handed to one worker.
const minChunk = 256

// Sample evaluates f at every point, storing f(pts[i]) in dst[i].
func Sample(f Field, pts []Point, dst []float64) error {
	if len(dst) != len(pts) {
		return ErrLengthMismatch
	}
	for i, p := range pts {
		dst[i] = f.At(p)
	}
	return nil
}

// SampleParallel is like Sample but splits the points into contiguous chunks
// evaluated on up to workers goroutines. If workers is 0 or negative,
// GOMAXPROCS is used. Cancelling ctx stops workers between chunks; if any
// chunk was skipped the context error is returned and dst is partially
// filled. A run that completes every chunk returns nil.
func SampleParallel(ctx context.Context, f Field, pts []Point, dst []float64, workers int) error {
	if len(dst) != len(pts) {
		return ErrLengthMismatch
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	chunk := (len(pts) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	Logger().Debug("surfaces: parallel sampling",
		"points", len(pts), "workers", workers, "chunk", chunk)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	skipped := false
	for start := 0; start < len(pts); start += chunk {
		end := min(start+chunk, len(pts))
		if gctx.Err() != nil {
			skipped = true
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				dst[i] = f.At(pts[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if skipped {
		return ctx.Err()
	}
	return nil
}

// Grid returns cols*rows sample points covering the rectangle spanned by lo
// and hi in row-major order, from lo towards hi. Both corners are included
// when cols and rows are at least 2. A single column or row sits on lo.
// Non-positive dimensions yield no points.
func Grid(lo, hi Point, cols, rows int) []Point {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	step := func(lo, hi float64, n int) float64 {
		if n < 2 {
			return 0
		}
		return (hi - lo) / float64(n-1)
	}
	dx, dy := step(lo.X, hi.X, cols), step(lo.Y, hi.Y, rows)

	pts := make([]Point, 0, cols*rows)
	for r := 0; r < rows; r++ {
		y := lo.Y + float64(r)*dy
		for c := 0; c < cols; c++ {
			pts = append(pts, Point{X: lo.X + float64(c)*dx, Y: y})
		}
	}
	return pts
}
