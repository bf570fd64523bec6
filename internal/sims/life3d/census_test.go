package life3d

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"life3d/internal/core"
)

func enumerateLive(g core.Reader) int {
	live := 0
	g.Each(func(_, _, _, v int) {
		if v > 0 {
			live++
		}
	})
	return live
}

func TestCountLive(t *testing.T) {
	g := core.NewGrid(3, 4, 5)
	assert.Equal(t, 0, CountLive(g))

	g.Set(0, 0, 0, 1)
	g.Set(2, 3, 4, 16)
	g.Set(1, 2, 3, 255)
	assert.Equal(t, 3, CountLive(g))

	g.Fill(1)
	assert.Equal(t, 60, CountLive(g))
}

func TestCensusAfterSeedAndStepSequence(t *testing.T) {
	e := NewWithConfig(Config{
		Size:    core.Size{X: 12, Y: 10, Z: 8},
		Rules:   Rules{MinNeighbors: 4, MaxNeighbors: 9, BirthCount: 5, Density: 0.3},
		Seed:    21,
		Workers: 2,
	})
	e.Seed()
	assert.Equal(t, enumerateLive(e.Current()), e.LiveCount())

	for i := 0; i < 6; i++ {
		e.Step()
		assert.Equal(t, enumerateLive(e.Current()), e.LiveCount(), "generation %d", e.Generation())
		assert.Equal(t, e.LiveCount(), e.LastStep().Live())
		if i == 3 {
			e.Seed()
			assert.Equal(t, enumerateLive(e.Current()), e.LiveCount())
		}
	}
}
