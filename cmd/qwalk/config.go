package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qwalk/coined"
	"github.com/katalvlaran/qwalk/continuous"
	"github.com/katalvlaran/qwalk/walk"
)

// Config carries the tunables every subcommand shares. Zero values mean
// "use the engine default" so a partial YAML file composes cleanly with
// the built-in defaults.
type Config struct {
	// Gamma is the continuous-walk hopping rate; 0 selects the engine's
	// default 1/N.
	Gamma float64 `yaml:"gamma"`

	// OracleWeight scales the marked-vertex projector.
	OracleWeight float64 `yaml:"oracle_weight"`

	// Generator is "adjacency" or "laplacian".
	Generator string `yaml:"generator"`

	// Coin is "grover" or "hadamard".
	Coin string `yaml:"coin"`

	// Samples overrides the evaluator's sampling resolution; 0 asks the
	// engine. The coined engine ignores it and samples once per step.
	Samples int `yaml:"samples"`

	// Tolerance bounds probability-mass drift before a run aborts.
	Tolerance float64 `yaml:"tolerance"`

	// OutputDir receives charts and CSV exports.
	OutputDir string `yaml:"output_dir"`
}

func defaultConfig() Config {
	return Config{
		OracleWeight: continuous.DefaultOracleWeight,
		Generator:    continuous.Adjacency.String(),
		Coin:         coined.CoinGrover.String(),
		Tolerance:    walk.DefaultTolerance,
		OutputDir:    "results",
	}
}

// loadConfig returns the defaults overlaid with the YAML file at path, or
// just the defaults when path is empty.
func loadConfig(path string) (Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// generator resolves the configured generator tag.
func (c Config) generator() (continuous.Generator, error) {
	switch c.Generator {
	case "", continuous.Adjacency.String():
		return continuous.Adjacency, nil
	case continuous.Laplacian.String():
		return continuous.Laplacian, nil
	default:
		return continuous.Adjacency, fmt.Errorf("config: unknown generator %q", c.Generator)
	}
}

// coin resolves the configured coin tag.
func (c Config) coin() (coined.Coin, error) {
	switch c.Coin {
	case "", coined.CoinGrover.String():
		return coined.CoinGrover, nil
	case coined.CoinHadamard.String():
		return coined.CoinHadamard, nil
	default:
		return coined.CoinGrover, fmt.Errorf("config: unknown coin %q", c.Coin)
	}
}
