//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"life3d/internal/core"
)

// Painter uploads rasterized frames into a single ebiten image.
type Painter struct {
	raster *Rasterizer
	img    *ebiten.Image
}

// NewPainter allocates a painter for a w*h viewport.
func NewPainter(w, h int) *Painter {
	r := NewRasterizer(w, h)
	w, h = r.Size()
	return &Painter{raster: r, img: ebiten.NewImage(w, h)}
}

// Draw renders g with the view and draws it at the top-left of dst.
func (p *Painter) Draw(dst *ebiten.Image, g core.Reader, v View) {
	p.img.WritePixels(p.raster.Render(g, v))
	dst.DrawImage(p.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.raster.Size() }
