package life3d

import "life3d/internal/core"

// CountLive returns the number of cells with a positive value.
func CountLive(g core.Reader) int {
	live := 0
	for _, v := range g.Cells() {
		if v > 0 {
			live++
		}
	}
	return live
}
