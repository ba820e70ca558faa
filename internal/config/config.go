// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads settings for the surfdemo command from flags,
// SURFDEMO_* environment variables and an optional YAML file, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the sampling settings.
type Config struct {
	// Definition is the path of the YAML field definition.
	Definition string `mapstructure:"definition" validate:"required"`

	MinX float64 `mapstructure:"min_x"`
	MinY float64 `mapstructure:"min_y"`
	MaxX float64 `mapstructure:"max_x"`
	MaxY float64 `mapstructure:"max_y"`

	Cols int `mapstructure:"cols" validate:"gt=0"`
	Rows int `mapstructure:"rows" validate:"gt=0"`

	// Workers bounds parallel sampling; 0 means GOMAXPROCS.
	Workers int `mapstructure:"workers" validate:"gte=0"`

	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "SURFDEMO"

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"definition": "definition",
	"min-x":      "min_x",
	"min-y":      "min_y",
	"max-x":      "max_x",
	"max-y":      "max_y",
	"cols":       "cols",
	"rows":       "rows",
	"workers":    "workers",
	"log-level":  "log_level",
}

// NewFlagSet returns the flags understood by Load.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "optional YAML configuration file")
	fs.StringP("definition", "d", "", "YAML field definition file")
	fs.Float64("min-x", -1, "left edge of the sampled region")
	fs.Float64("min-y", -1, "top edge of the sampled region")
	fs.Float64("max-x", 1, "right edge of the sampled region")
	fs.Float64("max-y", 1, "bottom edge of the sampled region")
	fs.Int("cols", 16, "samples per row")
	fs.Int("rows", 16, "number of rows")
	fs.Int("workers", 0, "sampling goroutines (0 = GOMAXPROCS)")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	return fs
}

// Load parses args with fs and resolves the configuration.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("config: binding flag %s: %w", flag, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// ErrUnknownLevel is returned by Level for an unrecognised log level.
var ErrUnknownLevel = errors.New("config: unknown log level")

// Level converts LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, c.LogLevel)
	}
	return l, nil
}
