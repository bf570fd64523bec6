package core

import (
	"math/rand/v2"
	"time"
)

// Source yields uniform draws in [0, 1). *rand.Rand satisfies it, and tests
// substitute fixed sequences.
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r    *rand.Rand
	seed int64
}

// NewRNG creates a deterministic RNG using the provided seed. A zero seed is
// replaced by the wall clock so interactive runs differ.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0)), seed: seed}
}

// Seed reports the effective seed.
func (r *RNG) Seed() int64 { return r.seed }

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// SequenceSource replays a fixed list of draws, wrapping around at the end.
type SequenceSource struct {
	Values []float64
	pos    int
}

// Float64 returns the next value of the sequence.
func (s *SequenceSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}
