// Package config loads tunable planner/runner settings from an optional
// YAML file, falling back to the package defaults when the file is
// absent.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kestrel-labs/domplanner/internal/planning"
)

// Config is the top-level tunable surface: MCTS search parameters plus
// the runner's re-planning behavior.
type Config struct {
	Simulations         int     `yaml:"simulations"`
	ExplorationConstant float64 `yaml:"exploration_constant"`
	RolloutDepth        int     `yaml:"rollout_depth"`
	TopKActions         int     `yaml:"top_k_actions"`
	Discount            float64 `yaml:"discount"`
	ExecutePrefix       int     `yaml:"execute_prefix"`
	MaxIterations       int     `yaml:"max_iterations"`
	DefaultInputText    string  `yaml:"default_input_text"`
}

// Default returns the CLI's reference defaults (simulations=80, matching
// the original entry point, rather than the library's DefaultMCTSConfig
// default of 96 — see DESIGN.md Open Question on tunables).
func Default() Config {
	return Config{
		Simulations:         80,
		ExplorationConstant: 1.4,
		RolloutDepth:        5,
		TopKActions:         8,
		Discount:            0.96,
		ExecutePrefix:       1,
		MaxIterations:       10,
		DefaultInputText:    "seed",
	}
}

// Load reads path and overlays it onto Default(). A missing file is not
// an error; any other read or decode error is returned wrapped.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// MCTSConfig projects the relevant fields into a planning.MCTSConfig.
func (c Config) MCTSConfig() planning.MCTSConfig {
	return planning.MCTSConfig{
		Simulations:         c.Simulations,
		ExplorationConstant: c.ExplorationConstant,
		RolloutDepth:        c.RolloutDepth,
		TopKActions:         c.TopKActions,
		Discount:            c.Discount,
	}
}
