// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewFlagSet("test"), []string{"-d", "field.yaml"})
	require.NoError(t, err)

	assert.Equal(t, "field.yaml", cfg.Definition)
	assert.Equal(t, -1.0, cfg.MinX)
	assert.Equal(t, 1.0, cfg.MaxY)
	assert.Equal(t, 16, cfg.Cols)
	assert.Equal(t, 16, cfg.Rows)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Flags(t *testing.T) {
	cfg, err := Load(NewFlagSet("test"), []string{
		"--definition", "x.yaml", "--cols", "4", "--rows", "2", "--min-x", "-8", "--log-level", "debug",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Cols)
	assert.Equal(t, 2, cfg.Rows)
	assert.Equal(t, -8.0, cfg.MinX)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SURFDEMO_COLS", "32")
	t.Setenv("SURFDEMO_MAX_X", "2.5")

	cfg, err := Load(NewFlagSet("test"), []string{"-d", "f.yaml"})
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Cols)
	assert.Equal(t, 2.5, cfg.MaxX)

	// An explicit flag wins over the environment.
	cfg, err = Load(NewFlagSet("test"), []string{"-d", "f.yaml", "--cols", "3"})
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Cols)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "surfdemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("definition: rings.yaml\nrows: 7\nworkers: 2\n"), 0o600))

	cfg, err := Load(NewFlagSet("test"), []string{"--config", path})
	require.NoError(t, err)
	assert.Equal(t, "rings.yaml", cfg.Definition)
	assert.Equal(t, 7, cfg.Rows)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing definition", nil},
		{"zero cols", []string{"-d", "f.yaml", "--cols", "0"}},
		{"negative workers", []string{"-d", "f.yaml", "--workers", "-1"}},
		{"bad level", []string{"-d", "f.yaml", "--log-level", "loud"}},
		{"missing file", []string{"-d", "f.yaml", "--config", "/nonexistent/surfdemo.yaml"}},
		{"unknown flag", []string{"--bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewFlagSet("test")
			fs.SetOutput(io.Discard)
			_, err := Load(fs, tt.args)
			assert.Error(t, err)
		})
	}
}

func TestLevel_Unknown(t *testing.T) {
	cfg := &Config{LogLevel: "chatty"}
	_, err := cfg.Level()
	assert.ErrorIs(t, err, ErrUnknownLevel)
}
