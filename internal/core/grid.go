package core

import "fmt"

// Reader is the read-only view of a grid handed to renderers and counters.
// Cells returns the live backing slice so hot loops avoid a copy; holders of
// a Reader must never write through it. Take a Clone to keep or modify cells.
type Reader interface {
	Size() Size
	In(x, y, z int) bool
	At(x, y, z int) int
	Each(fn func(x, y, z, v int))
	Cells() []int
}

// Grid stores a 3D volume of integer cell values in x-major order (x, then y,
// then z). A value of zero is a dead cell; any positive value is alive.
type Grid struct {
	size Size
	data []int
}

// NewGrid allocates an all-dead grid. Every dimension must be positive.
func NewGrid(x, y, z int) *Grid {
	if x <= 0 || y <= 0 || z <= 0 {
		panic(fmt.Sprintf("core: invalid grid dimensions %dx%dx%d", x, y, z))
	}
	return &Grid{size: Size{X: x, Y: y, Z: z}, data: make([]int, x*y*z)}
}

// NewGridOf allocates an all-dead grid with the provided size.
func NewGridOf(s Size) *Grid { return NewGrid(s.X, s.Y, s.Z) }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return g.size }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Cells exposes the backing slice. Only the owner of the grid may write
// through it.
func (g *Grid) Cells() []int { return g.data }

// In reports whether (x, y, z) lies inside the volume.
func (g *Grid) In(x, y, z int) bool {
	return x >= 0 && x < g.size.X && y >= 0 && y < g.size.Y && z >= 0 && z < g.size.Z
}

// Index returns the linear slice index for coordinates (x, y, z).
func (g *Grid) Index(x, y, z int) int { return (x*g.size.Y+y)*g.size.Z + z }

// At returns the value at (x, y, z). Out-of-range coordinates panic.
func (g *Grid) At(x, y, z int) int {
	g.check(x, y, z)
	return g.data[g.Index(x, y, z)]
}

// Set stores v at (x, y, z). Out-of-range coordinates panic.
func (g *Grid) Set(x, y, z, v int) {
	g.check(x, y, z)
	g.data[g.Index(x, y, z)] = v
}

func (g *Grid) check(x, y, z int) {
	if !g.In(x, y, z) {
		panic(fmt.Sprintf("core: cell (%d,%d,%d) outside %v grid", x, y, z, g.size))
	}
}

// Each visits every cell in x-major, then y, then z order.
func (g *Grid) Each(fn func(x, y, z, v int)) {
	i := 0
	for x := 0; x < g.size.X; x++ {
		for y := 0; y < g.size.Y; y++ {
			for z := 0; z < g.size.Z; z++ {
				fn(x, y, z, g.data[i])
				i++
			}
		}
	}
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() { g.Fill(0) }

// Fill sets every cell to v.
func (g *Grid) Fill(v int) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{size: g.size, data: make([]int, len(g.data))}
	copy(c.data, g.data)
	return c
}

// CopyFrom overwrites g with the contents of src. Sizes must match.
func (g *Grid) CopyFrom(src Reader) {
	g.mustMatch(src.Size())
	copy(g.data, src.Cells())
}

// Swap exchanges the backing storage of g and other without copying.
func (g *Grid) Swap(other *Grid) {
	g.mustMatch(other.size)
	g.data, other.data = other.data, g.data
}

func (g *Grid) mustMatch(s Size) {
	if s != g.size {
		panic(fmt.Sprintf("core: grid size mismatch %v vs %v", g.size, s))
	}
}
