//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"life3d/internal/core"
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	idleColor   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders the status and rule controls to the right of the volume view.
type HUD struct {
	sim    core.Sim
	width  int
	panel  *ebiten.Image
	title  string
	status Status

	controls    []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int
}

type controlState struct {
	control   core.ParameterControl
	value     float64
	hasValue  bool
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), title: strings.ToUpper(sim.Name()) + " Controls"}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, controlState{control: ctrl})
		}
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	h.layout()
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int { return h.width }

// Update refreshes the displayed values and handles clicks on the +/- buttons.
func (h *HUD) Update(offsetX int, status Status) {
	h.offsetX = offsetX
	h.status = status
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		for i := range h.controls {
			c := &h.controls[i]
			p, ok := snap.Lookup(c.control.Key)
			if !ok {
				c.hasValue = false
				continue
			}
			v, err := strconv.ParseFloat(p.Value, 64)
			c.value, c.hasValue = v, err == nil
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case !c.hasValue:
		case pt.In(c.minusRect):
			h.apply(c, -1)
			return
		case pt.In(c.plusRect):
			h.apply(c, 1)
			return
		}
	}
}

func (h *HUD) apply(c *controlState, dir int) {
	target, changed := adjust(c.control, c.value, dir)
	if !changed {
		return
	}
	switch c.control.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil && h.intSetter.SetIntParameter(c.control.Key, int(target)) {
			c.value = target
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil && h.floatSetter.SetFloatParameter(c.control.Key, target) {
			c.value = target
		}
	}
}

// Draw paints the panel at offsetX on screen.
func (h *HUD) Draw(screen *ebiten.Image, height int) {
	if h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	for _, line := range h.status.Lines() {
		y += statusSpacing
		text.Draw(h.panel, line, face, panelPadding, y, mutedColor)
	}

	for i := range h.controls {
		c := &h.controls[i]
		labelY := c.top + labelBaseline
		text.Draw(h.panel, c.control.Label, face, panelPadding, labelY, labelColor)
		value := "--"
		if c.hasValue {
			value = formatValue(c.control, c.value)
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, c.minusRect.Min.X-buttonGap-w, labelY, labelColor)

		_, canDec := adjust(c.control, c.value, -1)
		_, canInc := adjust(c.control, c.value, 1)
		h.button(c.minusRect, "-", c.hasValue && canDec)
		h.button(c.plusRect, "+", c.hasValue && canInc)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) button(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = idleColor, mutedColor
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 18
	controlsTop    = panelPadding + headerBaseline + 4*statusSpacing + 8
)
