package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	for _, dims := range [][3]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}, {-2, 3, 3}} {
		assert.Panics(t, func() { NewGrid(dims[0], dims[1], dims[2]) }, "dims %v", dims)
	}
}

func TestGridStartsDead(t *testing.T) {
	g := NewGrid(3, 4, 5)
	assert.Equal(t, Size{X: 3, Y: 4, Z: 5}, g.Size())
	assert.Equal(t, 60, g.Len())
	assert.Equal(t, 60, g.Size().Volume())
	for _, v := range g.Cells() {
		require.Zero(t, v)
	}
}

func TestGridAccessors(t *testing.T) {
	g := NewGrid(3, 4, 5)
	g.Set(2, 3, 4, 16)
	g.Set(0, 0, 1, 1)

	assert.Equal(t, 16, g.At(2, 3, 4))
	assert.Equal(t, 1, g.At(0, 0, 1))
	assert.Equal(t, 59, g.Index(2, 3, 4))
	assert.Equal(t, 1, g.Index(0, 0, 1))
	assert.Equal(t, 5, g.Index(0, 1, 0))
	assert.Equal(t, 20, g.Index(1, 0, 0))

	assert.True(t, g.In(0, 0, 0))
	assert.False(t, g.In(-1, 0, 0))
	assert.False(t, g.In(0, 4, 0))
	assert.False(t, g.In(0, 0, 5))
	assert.Panics(t, func() { g.At(3, 0, 0) })
	assert.Panics(t, func() { g.Set(0, -1, 0, 1) })
}

func TestGridEachIsXMajor(t *testing.T) {
	g := NewGrid(2, 2, 2)
	var order [][3]int
	g.Each(func(x, y, z, _ int) { order = append(order, [3]int{x, y, z}) })

	assert.Equal(t, [][3]int{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}, order)
}

func TestGridCloneAndCopy(t *testing.T) {
	g := NewGrid(2, 2, 3)
	g.Fill(4)
	c := g.Clone()
	g.Clear()

	assert.Equal(t, 4, c.At(1, 1, 2))
	assert.Equal(t, 0, g.At(1, 1, 2))

	g.CopyFrom(c)
	assert.Equal(t, c.Cells(), g.Cells())
	assert.Panics(t, func() { g.CopyFrom(NewGrid(2, 2, 2)) })
}

func TestGridSwapExchangesStorage(t *testing.T) {
	a := NewGrid(2, 2, 2)
	b := NewGrid(2, 2, 2)
	a.Fill(1)
	b.Fill(2)
	backing := &a.Cells()[0]

	a.Swap(b)

	assert.Equal(t, 2, a.At(0, 0, 0))
	assert.Equal(t, 1, b.At(0, 0, 0))
	assert.Same(t, backing, &b.Cells()[0])
	assert.Panics(t, func() { a.Swap(NewGrid(1, 2, 2)) })
}
