package life3d

// MaxNeighbors is the size of the 3D Moore neighborhood.
const MaxNeighbors = 26

// AgeIncrement is added to a surviving cell's value each generation.
const AgeIncrement = 15

// Rules holds the tunable thresholds. Each field is clamped on assignment and
// the fields are never validated against each other: MinNeighbors above
// MaxNeighbors makes survival impossible.
//
// All three counts clamp to [0, 26] on both sides. An oversized MinNeighbors
// therefore lands on 26, and with MaxNeighbors also 26 a fully surrounded
// live cell still survives.
type Rules struct {
	// MinNeighbors is the fewest live neighbors a live cell needs to survive.
	MinNeighbors int
	// MaxNeighbors is the most live neighbors a live cell tolerates.
	MaxNeighbors int
	// BirthCount is the exact live-neighbor count that brings a dead cell to life.
	BirthCount int
	// Density is the fraction of cells made alive by seeding.
	Density float64
}

// DefaultRules returns the classic 2D thresholds on a sparse initial volume.
func DefaultRules() Rules {
	return Rules{MinNeighbors: 2, MaxNeighbors: 3, BirthCount: 3, Density: 0.002}
}

// Configure builds a clamped rule set.
func Configure(minNeighbors, maxNeighbors, birthCount int, density float64) Rules {
	var r Rules
	r.SetMinNeighbors(minNeighbors)
	r.SetMaxNeighbors(maxNeighbors)
	r.SetBirthCount(birthCount)
	r.SetDensity(density)
	return r
}

// SetMinNeighbors stores n clamped to [0, 26].
func (r *Rules) SetMinNeighbors(n int) { r.MinNeighbors = clampCount(n) }

// SetMaxNeighbors stores n clamped to [0, 26].
func (r *Rules) SetMaxNeighbors(n int) { r.MaxNeighbors = clampCount(n) }

// SetBirthCount stores n clamped to [0, 26].
func (r *Rules) SetBirthCount(n int) { r.BirthCount = clampCount(n) }

// SetDensity stores d clamped to [0, 1].
func (r *Rules) SetDensity(d float64) { r.Density = ClampDensity(d) }

// Clamped returns a copy with every field forced into range.
func (r Rules) Clamped() Rules {
	return Configure(r.MinNeighbors, r.MaxNeighbors, r.BirthCount, r.Density)
}

// ClampDensity forces d into [0, 1]. NaN is treated as zero.
func ClampDensity(d float64) float64 {
	switch {
	case d != d:
		return 0
	case d > 1:
		return 1
	case d < 0:
		return 0
	}
	return d
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxNeighbors {
		return MaxNeighbors
	}
	return n
}
