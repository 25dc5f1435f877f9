// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package config loads the handful of run-time tunables the two CLIs
// share (cell width, epsilon, weight kernel, correction on/off) from
// an optional YAML/JSON config file, with CLI flags overriding file
// values.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// WeightKernel names one of grid's weight functions.
type WeightKernel string

const (
	WeightLinear WeightKernel = "linear"
	WeightSquare WeightKernel = "square"
)

// Config holds the tunables shared by cmd/tessellate-delaunay and
// cmd/tessellate-grid.
type Config struct {
	CellWidth float64      `mapstructure:"cell_width"`
	Eps       float64      `mapstructure:"eps"`
	Weight    WeightKernel `mapstructure:"weight"`
	Correct   bool         `mapstructure:"correct"`
}

// Default returns the baseline configuration used when no config file
// and no overriding flags are supplied.
func Default() Config {
	return Config{
		CellWidth: 1.0,
		Eps:       1e-12,
		Weight:    WeightLinear,
		Correct:   false,
	}
}

// Load reads path (YAML or JSON, sniffed from its extension) into a
// Config seeded with Default's values. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("cell_width", cfg.CellWidth)
	v.SetDefault("eps", cfg.Eps)
	v.SetDefault("weight", string(cfg.Weight))
	v.SetDefault("correct", cfg.Correct)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	cfg.Weight = WeightKernel(strings.ToLower(string(cfg.Weight)))

	return cfg, nil
}

// Validate checks that cfg's values are usable.
func (c Config) Validate() error {
	if c.CellWidth <= 0 {
		return fmt.Errorf("config: cell_width must be positive, got %v", c.CellWidth)
	}
	if c.Eps <= 0 {
		return fmt.Errorf("config: eps must be positive, got %v", c.Eps)
	}
	switch c.Weight {
	case WeightLinear, WeightSquare:
	default:
		return fmt.Errorf("config: unknown weight kernel %q", c.Weight)
	}
	return nil
}
