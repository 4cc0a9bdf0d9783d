// Package config loads the engine's training and search settings, and the
// path of an optional EQR override file, from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// EngineConfig is the top-level configuration block for a pokersolver
// process: one training profile, one search profile, and the path to an
// optional EQR factor override file.
type EngineConfig struct {
	Training  TrainingSettings `hcl:"training,block"`
	Search    SearchSettings   `hcl:"search,block"`
	EQRConfig EQRSettings      `hcl:"eqr,block"`
}

// TrainingSettings configures a cfr.Trainer run.
type TrainingSettings struct {
	Iterations     int  `hcl:"iterations,optional"`
	Players        int  `hcl:"players,optional"`
	DiscountEvery  int  `hcl:"discount_every,optional"`
	LinearAveraging bool `hcl:"linear_averaging,optional"`
}

// SearchSettings configures an mcts.Search run.
type SearchSettings struct {
	Iterations int    `hcl:"iterations,optional"`
	Seed       uint64 `hcl:"seed,optional"`
}

// EQRSettings points at an optional TOML file of factor-table overrides.
type EQRSettings struct {
	OverridesFile string `hcl:"overrides_file,optional"`
}

// Default returns the configuration used when no file is supplied.
func Default() *EngineConfig {
	return &EngineConfig{
		Training: TrainingSettings{
			Iterations:      10000,
			Players:         2,
			DiscountEvery:   100,
			LinearAveraging: true,
		},
		Search: SearchSettings{
			Iterations: 1000,
			Seed:       0,
		},
	}
}

// Load reads an HCL configuration file, falling back to Default when path
// does not exist. Zero-valued fields present in the file are backfilled
// from Default so a caller can override only what they care about.
func Load(path string) (*EngineConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", path, diags.Error())
	}

	cfg := Default()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", path, diags.Error())
	}

	if cfg.Training.Iterations == 0 {
		cfg.Training.Iterations = Default().Training.Iterations
	}
	if cfg.Training.Players == 0 {
		cfg.Training.Players = Default().Training.Players
	}
	if cfg.Training.DiscountEvery == 0 {
		cfg.Training.DiscountEvery = Default().Training.DiscountEvery
	}
	if cfg.Search.Iterations == 0 {
		cfg.Search.Iterations = Default().Search.Iterations
	}

	return cfg, nil
}

// Validate checks that the configuration describes a runnable engine.
func (c *EngineConfig) Validate() error {
	if c.Training.Players < 2 {
		return fmt.Errorf("config: training.players must be at least 2, got %d", c.Training.Players)
	}
	if c.Training.Iterations < 0 {
		return fmt.Errorf("config: training.iterations must be non-negative")
	}
	if c.Search.Iterations < 0 {
		return fmt.Errorf("config: search.iterations must be non-negative")
	}
	return nil
}
