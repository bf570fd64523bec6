package app

import (
	"errors"
	"fmt"
	"log/slog"

	"life3d/internal/config"
	"life3d/internal/core"
	"life3d/internal/sims/life3d"
)

// ErrUsage marks errors caused by bad command-line input.
var ErrUsage = errors.New("invalid arguments")

// LoadConfig reads the config file named by the flags and layers the flag and
// positional-argument overrides on top of it.
func LoadConfig(f *Flags, args []string, logger *slog.Logger) (*config.Config, error) {
	if _, ok := core.Sims()[f.Sim]; !ok {
		return nil, fmt.Errorf("%w: unknown sim %q (have %v)", ErrUsage, f.Sim, core.SimNames())
	}
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	if f.Seed != 0 {
		cfg.Sim.Seed = f.Seed
	}
	if f.Workers != 0 {
		cfg.Sim.Workers = f.Workers
	}

	rules, applied, err := ParseRuleArgs(args, cfg.ClampedRules())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	switch {
	case applied:
		cfg.SetRules(rules)
	case len(args) > 0:
		logger.Warn("ignoring positional arguments; expected exactly 4", "got", len(args), "usage", RuleArgsUsage)
	}
	return cfg, nil
}

// NewEngine builds the named sim through the registry and seeds it from cfg.
func NewEngine(name string, cfg *config.Config, logger *slog.Logger) (*life3d.Engine, error) {
	factory, ok := core.Sims()[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown sim %q (have %v)", ErrUsage, name, core.SimNames())
	}
	eng, ok := factory(cfg.Params()).(*life3d.Engine)
	if !ok {
		return nil, fmt.Errorf("sim %q is not a volumetric life engine", name)
	}
	eng.SetLogger(logger)
	eng.Reset(cfg.Sim.Seed)
	r := eng.Rules()
	logger.Info("engine ready",
		"size", eng.Size().String(),
		"seed", eng.SeedValue(),
		"density", r.Density,
		"min", r.MinNeighbors,
		"max", r.MaxNeighbors,
		"birth", r.BirthCount,
		"live", eng.LiveCount(),
	)
	return eng, nil
}
