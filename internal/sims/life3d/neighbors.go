package life3d

import "life3d/internal/core"

// CountLiveNeighbors returns how many of the 26 cells around (x, y, z) are
// alive. Positions outside the volume do not exist and are skipped, so corner
// cells see at most 7 neighbors, edges 11, faces 17 and interior cells 26.
func CountLiveNeighbors(g core.Reader, x, y, z int) int {
	return countNeighbors(g.Cells(), g.Size(), x, y, z)
}

// countNeighbors walks the clipped 3x3x3 block around (x, y, z) directly on
// the x-major backing slice.
func countNeighbors(cells []int, s core.Size, x, y, z int) int {
	x0, x1 := clip(x, s.X)
	y0, y1 := clip(y, s.Y)
	z0, z1 := clip(z, s.Z)
	count := 0
	for i := x0; i <= x1; i++ {
		for j := y0; j <= y1; j++ {
			row := (i*s.Y + j) * s.Z
			for k := z0; k <= z1; k++ {
				if i == x && j == y && k == z {
					continue
				}
				if cells[row+k] > 0 {
					count++
				}
			}
		}
	}
	return count
}

// clip returns the inclusive neighbor range around v on an axis of length n.
func clip(v, n int) (int, int) {
	lo, hi := v-1, v+1
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi
}
