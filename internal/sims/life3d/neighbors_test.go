package life3d

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"life3d/internal/core"
)

func filled(x, y, z, v int) *core.Grid {
	g := core.NewGrid(x, y, z)
	g.Fill(v)
	return g
}

func TestCountLiveNeighborsClipsAtBoundary(t *testing.T) {
	g := filled(3, 3, 3, 1)

	tests := []struct {
		name    string
		x, y, z int
		want    int
	}{
		{"corner", 0, 0, 0, 7},
		{"opposite corner", 2, 2, 2, 7},
		{"edge", 1, 0, 0, 11},
		{"face", 1, 1, 0, 17},
		{"interior", 1, 1, 1, 26},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountLiveNeighbors(g, tt.x, tt.y, tt.z))
		})
	}
}

func TestCountLiveNeighborsLargerVolume(t *testing.T) {
	g := filled(6, 5, 4, 3)
	assert.Equal(t, 7, CountLiveNeighbors(g, 0, 0, 0))
	assert.Equal(t, 7, CountLiveNeighbors(g, 5, 4, 3))
	assert.Equal(t, 26, CountLiveNeighbors(g, 2, 2, 2))
}

func TestCountLiveNeighborsDoesNotWrap(t *testing.T) {
	g := core.NewGrid(4, 4, 4)
	// Cells on the opposite faces would be neighbors of (0,0,0) on a torus.
	g.Set(3, 0, 0, 1)
	g.Set(0, 3, 0, 1)
	g.Set(0, 0, 3, 1)
	g.Set(3, 3, 3, 1)

	assert.Equal(t, 0, CountLiveNeighbors(g, 0, 0, 0))
}

func TestCountLiveNeighborsSkipsSelf(t *testing.T) {
	g := core.NewGrid(3, 3, 3)
	g.Set(1, 1, 1, 40)
	assert.Equal(t, 0, CountLiveNeighbors(g, 1, 1, 1))
	assert.Equal(t, 1, CountLiveNeighbors(g, 0, 0, 0))
}

func TestCountLiveNeighborsTreatsAnyPositiveValueAsAlive(t *testing.T) {
	g := core.NewGrid(3, 3, 3)
	g.Set(0, 1, 1, 1)
	g.Set(2, 1, 1, 16)
	g.Set(1, 0, 1, 255)
	assert.Equal(t, 3, CountLiveNeighbors(g, 1, 1, 1))
}
