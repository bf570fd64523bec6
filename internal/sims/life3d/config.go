package life3d

import (
	"strconv"

	"life3d/internal/core"
)

// Name is the registry key of the 3D life simulation.
const Name = "life3d"

// Config controls the engine dimensions, thresholds and parallelism.
type Config struct {
	Size  core.Size
	Rules Rules

	// Seed initializes the RNG; zero means wall-clock time.
	Seed int64
	// Workers is the number of goroutines per step. Zero or one steps
	// sequentially; a negative value uses every available CPU.
	Workers int
}

// DefaultConfig returns the standard 50x50x50 volume with the default rules.
func DefaultConfig() Config {
	return Config{
		Size:    core.Size{X: 50, Y: 50, Z: 50},
		Rules:   DefaultRules(),
		Workers: 1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults; rule values are clamped.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	positive := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	positive("x", &c.Size.X)
	positive("y", &c.Size.Y)
	positive("z", &c.Size.Z)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Rules.SetDensity(parsed)
		}
	}
	if v, ok := cfg["min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Rules.SetMinNeighbors(parsed)
		}
	}
	if v, ok := cfg["max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Rules.SetMaxNeighbors(parsed)
		}
	}
	if v, ok := cfg["birth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Rules.SetBirthCount(parsed)
		}
	}
	return c
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
