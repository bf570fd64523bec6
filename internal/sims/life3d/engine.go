package life3d

import (
	"log/slog"
	"sync/atomic"

	"life3d/internal/core"
)

// Engine owns a volume and its scratch buffer and advances it one generation
// at a time. It is driven by a single goroutine; other goroutines may read
// Current between steps or take a Snapshot.
type Engine struct {
	cfg Config

	cur     atomic.Pointer[core.Grid]
	scratch *core.Grid

	rules      Rules
	rng        core.Source
	seed       int64
	generation int
	last       StepStats

	log *slog.Logger
}

// New returns an engine with the provided dimensions using defaults.
func New(x, y, z int) *Engine {
	cfg := DefaultConfig()
	cfg.Size = core.Size{X: x, Y: y, Z: z}
	return NewWithConfig(cfg)
}

// NewWithConfig returns an engine configured from the provided options. The
// volume starts all dead; call Seed or Reset to populate it.
func NewWithConfig(cfg Config) *Engine {
	cur := core.NewGridOf(cfg.Size)
	e := &Engine{
		cfg:     cfg,
		scratch: core.NewGridOf(cfg.Size),
		rules:   cfg.Rules.Clamped(),
		log:     slog.New(slog.DiscardHandler),
	}
	e.cur.Store(cur)
	rng := core.NewRNG(cfg.Seed)
	e.rng = rng
	e.seed = rng.Seed()
	return e
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return Name }

// Size reports the volume dimensions.
func (e *Engine) Size() core.Size { return e.cfg.Size }

// SetLogger attaches a logger for reseed and configuration events.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	e.log = l
}

// SetSource replaces the random source used by Seed.
func (e *Engine) SetSource(src core.Source) { e.rng = src }

// Configure clamps and stores new thresholds.
func (e *Engine) Configure(minNeighbors, maxNeighbors, birthCount int, density float64) Rules {
	e.rules = Configure(minNeighbors, maxNeighbors, birthCount, density)
	e.log.Debug("rules configured",
		"min_neighbors", e.rules.MinNeighbors,
		"max_neighbors", e.rules.MaxNeighbors,
		"birth_count", e.rules.BirthCount,
		"density", e.rules.Density,
	)
	return e.rules
}

// Rules returns the active thresholds.
func (e *Engine) Rules() Rules { return e.rules }

// SeedValue reports the seed of the engine's own RNG.
func (e *Engine) SeedValue() int64 { return e.seed }

// Seed re-randomizes the whole volume at the configured density and restarts
// the generation count.
func (e *Engine) Seed() {
	g := e.scratch
	Seed(g, e.rules.Density, e.rng)
	e.scratch = e.cur.Swap(g)
	e.generation = 0
	e.last = StepStats{Births: CountLive(g)}
	e.log.Debug("volume seeded", "density", e.rules.Density, "live", e.last.Births)
}

// Reset re-creates the random source from seed and reseeds. A zero seed is
// replaced by the wall clock.
func (e *Engine) Reset(seed int64) {
	rng := core.NewRNG(seed)
	e.rng = rng
	e.seed = rng.Seed()
	e.log.Debug("rng reset", "seed", e.seed)
	e.Seed()
}

// Step advances one generation. The next generation is built in the scratch
// buffer and published with a single pointer swap once every cell is done.
func (e *Engine) Step() {
	cur := e.cur.Load()
	next := e.scratch
	e.last = NextParallel(cur, next, e.rules, e.workers())
	e.scratch = e.cur.Swap(next)
	e.generation++
}

func (e *Engine) workers() int {
	if e.cfg.Workers == 0 {
		return 1
	}
	return e.cfg.Workers
}

// LastStep reports the transitions counted by the most recent Step or Seed.
func (e *Engine) LastStep() StepStats { return e.last }

// Generation returns the number of steps since the last seed.
func (e *Engine) Generation() int { return e.generation }

// Current returns a read-only view of the current generation. The view is
// only valid until the next Step or Seed.
func (e *Engine) Current() core.Reader { return e.cur.Load() }

// Cells satisfies core.Sim.
func (e *Engine) Cells() core.Reader { return e.Current() }

// Snapshot returns a deep copy of the current generation.
func (e *Engine) Snapshot() *core.Grid { return e.cur.Load().Clone() }

// Load replaces the current generation with a copy of g and restarts the
// generation count. Sizes must match.
func (e *Engine) Load(g core.Reader) {
	next := e.scratch
	next.CopyFrom(g)
	e.scratch = e.cur.Swap(next)
	e.generation = 0
	e.last = StepStats{}
}

// LiveCount returns the number of live cells in the current generation.
func (e *Engine) LiveCount() int { return CountLive(e.cur.Load()) }
