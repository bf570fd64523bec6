// Package config provides configuration loading for the simulation and its
// front-ends.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"life3d/internal/core"
	"life3d/internal/sims/life3d"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Rules     RulesConfig     `yaml:"rules"`
	Sim       SimConfig       `yaml:"sim"`
	View      ViewConfig      `yaml:"view"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// GridConfig holds the fixed volume dimensions.
type GridConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

// RulesConfig holds the four thresholds. Values are clamped when applied,
// never rejected.
type RulesConfig struct {
	Density      float64 `yaml:"density"`
	MinNeighbors int     `yaml:"min_neighbors"`
	MaxNeighbors int     `yaml:"max_neighbors"`
	BirthCount   int     `yaml:"birth_count"`
}

// SimConfig holds engine settings.
type SimConfig struct {
	Seed    int64 `yaml:"seed"`    // 0 = time-based
	Workers int   `yaml:"workers"` // 0 = one per CPU
}

// ViewConfig holds viewer settings.
type ViewConfig struct {
	Width            int           `yaml:"width"`
	Height           int           `yaml:"height"`
	PointSize        float64       `yaml:"point_size"`
	RotateStep       float64       `yaml:"rotate_step"` // degrees per arrow key press
	XRotation        float64       `yaml:"x_rotation"`
	YRotation        float64       `yaml:"y_rotation"`
	AutoplayInterval time.Duration `yaml:"autoplay_interval"`
	HUDWidth         int           `yaml:"hud_width"`
}

// TelemetryConfig holds headless census output settings.
type TelemetryConfig struct {
	OutputDir string `yaml:"output_dir"`
	LogEvery  int    `yaml:"log_every"` // generations between progress logs
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}


func (c *Config) validate() error {
	if c.Grid.X <= 0 || c.Grid.Y <= 0 || c.Grid.Z <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%dx%d", c.Grid.X, c.Grid.Y, c.Grid.Z)
	}
	return nil
}

// Size returns the configured volume dimensions.
func (c *Config) Size() core.Size {
	return core.Size{X: c.Grid.X, Y: c.Grid.Y, Z: c.Grid.Z}
}

// ClampedRules returns the configured thresholds, clamped.
func (c *Config) ClampedRules() life3d.Rules {
	r := c.Rules
	return life3d.Configure(r.MinNeighbors, r.MaxNeighbors, r.BirthCount, r.Density)
}

// SetRules stores rules back into the config, e.g. after command-line overrides.
func (c *Config) SetRules(r life3d.Rules) {
	c.Rules = RulesConfig{
		Density:      r.Density,
		MinNeighbors: r.MinNeighbors,
		MaxNeighbors: r.MaxNeighbors,
		BirthCount:   r.BirthCount,
	}
}

// Engine builds the engine configuration.
func (c *Config) Engine() life3d.Config {
	workers := c.Sim.Workers
	if workers == 0 {
		workers = -1
	}
	return life3d.Config{
		Size:    c.Size(),
		Rules:   c.ClampedRules(),
		Seed:    c.Sim.Seed,
		Workers: workers,
	}
}

// Params flattens the engine settings into the key/value form the sim
// registry factories accept.
func (c *Config) Params() map[string]string {
	ec := c.Engine()
	return map[string]string{
		"x":       strconv.Itoa(ec.Size.X),
		"y":       strconv.Itoa(ec.Size.Y),
		"z":       strconv.Itoa(ec.Size.Z),
		"seed":    strconv.FormatInt(ec.Seed, 10),
		"workers": strconv.Itoa(ec.Workers),
		"density": strconv.FormatFloat(ec.Rules.Density, 'g', -1, 64),
		"min":     strconv.Itoa(ec.Rules.MinNeighbors),
		"max":     strconv.Itoa(ec.Rules.MaxNeighbors),
		"birth":   strconv.Itoa(ec.Rules.BirthCount),
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
