package render

import "image/color"

// Background is the clear color of the framebuffer.
var Background = color.RGBA{A: 255}

// AgeColor maps a live cell's value to a color running from green for
// newborn cells to red for cells aged 255 or more.
func AgeColor(v int) color.RGBA {
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	c := uint8(v)
	return color.RGBA{R: c, G: 255 - c, A: 255}
}
