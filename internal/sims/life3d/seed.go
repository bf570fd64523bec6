package life3d

import "life3d/internal/core"

// Seed overwrites every cell of g: one draw per cell in x-major order, alive
// (1) when the draw is below density and dead otherwise. Density is clamped
// to [0, 1] first.
func Seed(g *core.Grid, density float64, src core.Source) {
	density = ClampDensity(density)
	cells := g.Cells()
	for i := range cells {
		if src.Float64() < density {
			cells[i] = 1
			continue
		}
		cells[i] = 0
	}
}
