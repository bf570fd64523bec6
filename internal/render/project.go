// Package render projects a volume onto a 2D framebuffer.
package render

import (
	"math"

	"life3d/internal/core"
)

// extent is the half-width of the orthographic view volume. The unit cube is
// centered at the origin, so its diagonal fits with a small margin.
const extent = 1.2

// View holds the camera rotation and output dimensions.
type View struct {
	XRot      float64 // degrees about the screen x axis
	YRot      float64 // degrees about the vertical axis
	Width     int
	Height    int
	PointSize float64
}

// DefaultView returns the initial camera.
func DefaultView() View {
	return View{XRot: -45, YRot: 45, Width: 750, Height: 750, PointSize: 2.5}
}

// Rotate adjusts the camera by the given angles in degrees.
func (v *View) Rotate(dx, dy float64) {
	v.XRot = wrapDegrees(v.XRot + dx)
	v.YRot = wrapDegrees(v.YRot + dy)
}

func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d <= -180 {
		d += 360
	} else if d > 180 {
		d -= 360
	}
	return d
}

// Projector maps cell coordinates of one volume to screen space for a view.
type Projector struct {
	size core.Size
	view View
	m    [3][3]float64
}

// NewProjector precomputes the rotation for the view.
func NewProjector(size core.Size, v View) Projector {
	ax := v.XRot * math.Pi / 180
	ay := v.YRot * math.Pi / 180
	sx, cx := math.Sincos(ax)
	sy, cy := math.Sincos(ay)
	// Rx * Ry: rotate about y first, then about x.
	m := [3][3]float64{
		{cy, 0, sy},
		{sx * sy, cx, -sx * cy},
		{-cx * sy, sx, cx * cy},
	}
	return Projector{size: size, view: v, m: m}
}

// Project returns the screen position and depth of cell (x, y, z). Larger
// depth is nearer the viewer.
func (p Projector) Project(x, y, z int) (sx, sy, depth float64) {
	px := float64(x)/float64(p.size.X) - 0.5
	py := float64(y)/float64(p.size.Y) - 0.5
	pz := float64(z)/float64(p.size.Z) - 0.5

	rx := p.m[0][0]*px + p.m[0][1]*py + p.m[0][2]*pz
	ry := p.m[1][0]*px + p.m[1][1]*py + p.m[1][2]*pz
	rz := p.m[2][0]*px + p.m[2][1]*py + p.m[2][2]*pz

	sx = (rx + extent) / (2 * extent) * float64(p.view.Width)
	sy = (extent - ry) / (2 * extent) * float64(p.view.Height)
	return sx, sy, rz
}
