package life3d

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"life3d/internal/core"
)

// StepStats summarizes the transitions of one generation.
type StepStats struct {
	Births    int
	Deaths    int
	Survivors int
}

// Live returns the number of live cells in the new generation.
func (s StepStats) Live() int { return s.Births + s.Survivors }

func (s *StepStats) add(o StepStats) {
	s.Births += o.Births
	s.Deaths += o.Deaths
	s.Survivors += o.Survivors
}

// NextValue applies the transition rule to a single cell holding value cur
// with n live neighbors. The survival window only governs cells that are
// already alive; a dead cell is born solely on an exact BirthCount match.
func NextValue(cur, n int, r Rules) int {
	if n < r.MinNeighbors || n > r.MaxNeighbors {
		return 0
	}
	if cur == 0 && n == r.BirthCount {
		return 1
	}
	if cur > 0 {
		return cur + AgeIncrement
	}
	return 0
}

// Next computes the generation after cur into dst. Only cur is read, so dst
// must be a distinct grid of the same size.
func Next(cur core.Reader, dst *core.Grid, r Rules) StepStats {
	return NextParallel(cur, dst, r, 1)
}

// NextParallel is Next with the volume split into x-slabs evaluated by up to
// workers goroutines. Results are identical to Next. A non-positive workers
// count uses GOMAXPROCS.
func NextParallel(cur core.Reader, dst *core.Grid, r Rules, workers int) StepStats {
	s := cur.Size()
	if s != dst.Size() {
		panic(fmt.Sprintf("life3d: next generation size mismatch %v vs %v", s, dst.Size()))
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > s.X {
		workers = s.X
	}
	src := cur.Cells()
	out := dst.Cells()
	if &src[0] == &out[0] {
		panic("life3d: next generation must not be written over the current one")
	}
	if workers == 1 {
		return nextSlab(src, out, s, r, 0, s.X)
	}

	var (
		eg          errgroup.Group
		slabsPerJob = (s.X + workers - 1) / workers
		partial     = make([]StepStats, workers)
	)
	for i := range workers {
		x0 := i * slabsPerJob
		x1 := min(x0+slabsPerJob, s.X)
		if x0 >= s.X {
			break
		}
		eg.Go(func() error {
			partial[i] = nextSlab(src, out, s, r, x0, x1)
			return nil
		})
	}
	// Workers never fail; Wait is the barrier before the caller publishes dst.
	_ = eg.Wait()

	var stats StepStats
	for _, p := range partial {
		stats.add(p)
	}
	return stats
}

func nextSlab(src, out []int, s core.Size, r Rules, x0, x1 int) StepStats {
	var stats StepStats
	for x := x0; x < x1; x++ {
		for y := 0; y < s.Y; y++ {
			base := (x*s.Y + y) * s.Z
			for z := 0; z < s.Z; z++ {
				cur := src[base+z]
				next := NextValue(cur, countNeighbors(src, s, x, y, z), r)
				out[base+z] = next
				switch {
				case cur == 0 && next > 0:
					stats.Births++
				case cur > 0 && next == 0:
					stats.Deaths++
				case cur > 0:
					stats.Survivors++
				}
			}
		}
	}
	return stats
}

// Step returns the generation after cur as a new grid.
func Step(cur core.Reader, r Rules) *core.Grid {
	dst := core.NewGridOf(cur.Size())
	Next(cur, dst, r)
	return dst
}

// Advance moves g forward one generation using the caller-owned scratch
// buffer. Afterwards g holds the new generation and scratch the previous one.
func Advance(g, scratch *core.Grid, r Rules) StepStats {
	stats := Next(g, scratch, r)
	g.Swap(scratch)
	return stats
}
