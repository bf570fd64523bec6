package render

import (
	"image/color"
	"math"

	"life3d/internal/core"
)

// Rasterizer draws live cells as square points into an RGBA buffer with a
// depth test, so nearer cells hide farther ones.
type Rasterizer struct {
	w, h  int
	buf   []byte
	depth []float64
}

// NewRasterizer allocates a framebuffer of w*h pixels.
func NewRasterizer(w, h int) *Rasterizer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Rasterizer{w: w, h: h, buf: make([]byte, 4*w*h), depth: make([]float64, w*h)}
}

// Size returns the framebuffer dimensions.
func (r *Rasterizer) Size() (int, int) { return r.w, r.h }

// Pixels exposes the RGBA buffer of the last Render.
func (r *Rasterizer) Pixels() []byte { return r.buf }

// At returns the color of pixel (x, y) from the last Render.
func (r *Rasterizer) At(x, y int) color.RGBA {
	i := 4 * (y*r.w + x)
	return color.RGBA{R: r.buf[i], G: r.buf[i+1], B: r.buf[i+2], A: r.buf[i+3]}
}

// Render clears the framebuffer and draws every live cell of g. The view's
// Width and Height are overridden by the framebuffer size.
func (r *Rasterizer) Render(g core.Reader, v View) []byte {
	r.clear()
	v.Width, v.Height = r.w, r.h
	proj := NewProjector(g.Size(), v)
	half := v.PointSize / 2
	g.Each(func(x, y, z, val int) {
		if val <= 0 {
			return
		}
		sx, sy, d := proj.Project(x, y, z)
		r.point(sx, sy, half, d, AgeColor(val))
	})
	return r.buf
}

func (r *Rasterizer) clear() {
	for i := range r.depth {
		r.depth[i] = math.Inf(-1)
		base := 4 * i
		r.buf[base+0] = Background.R
		r.buf[base+1] = Background.G
		r.buf[base+2] = Background.B
		r.buf[base+3] = Background.A
	}
}

func (r *Rasterizer) point(cx, cy, half, d float64, c color.RGBA) {
	x0 := int(math.Floor(cx - half))
	x1 := int(math.Ceil(cx + half))
	y0 := int(math.Floor(cy - half))
	y1 := int(math.Ceil(cy + half))
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	for y := max(y0, 0); y < min(y1, r.h); y++ {
		for x := max(x0, 0); x < min(x1, r.w); x++ {
			i := y*r.w + x
			if d <= r.depth[i] {
				continue
			}
			r.depth[i] = d
			base := 4 * i
			r.buf[base+0] = c.R
			r.buf[base+1] = c.G
			r.buf[base+2] = c.B
			r.buf[base+3] = c.A
		}
	}
}
