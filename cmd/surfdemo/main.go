// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command surfdemo samples a field definition over a grid and prints one
// "x y value" line per sample.
//
// Usage:
//
//	surfdemo -d rings.yaml --cols 64 --rows 64 --min-x -4 --max-x 4
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/gogpu/surfaces"
	"github.com/gogpu/surfaces/fielddef"
	"github.com/gogpu/surfaces/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "surfdemo:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := config.NewFlagSet("surfdemo")
	fs.SetOutput(stderr)
	cfg, err := config.Load(fs, args)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	surfaces.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	data, err := os.ReadFile(cfg.Definition)
	if err != nil {
		return err
	}
	field, err := fielddef.Parse(data)
	if err != nil {
		return err
	}

	pts := surfaces.Grid(surfaces.Pt(cfg.MinX, cfg.MinY), surfaces.Pt(cfg.MaxX, cfg.MaxY), cfg.Cols, cfg.Rows)
	vals := make([]float64, len(pts))
	if err := surfaces.SampleParallel(ctx, field, pts, vals, cfg.Workers); err != nil {
		return err
	}
	surfaces.Logger().Info("sampled field", "definition", cfg.Definition, "points", len(pts))

	return write(stdout, pts, vals)
}

func write(w io.Writer, pts []surfaces.Point, vals []float64) error {
	bw := bufio.NewWriter(w)
	for i, p := range pts {
		bw.WriteString(p.String())
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(vals[i], 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
