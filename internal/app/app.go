//go:build ebiten

package app

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"life3d/internal/config"
	"life3d/internal/core"
	"life3d/internal/render"
	"life3d/internal/sims/life3d"
	"life3d/internal/ui"
)

// Game adapts the 3D engine to the ebiten.Game interface.
type Game struct {
	eng     *life3d.Engine
	painter *render.Painter
	hud     *ui.HUD
	log     *slog.Logger

	view       render.View
	rotateStep float64
	ticker     *core.FixedStep

	autoplay bool
	counting bool
}

// New constructs a Game around an already seeded engine.
func New(eng *life3d.Engine, vc config.ViewConfig, autoplay bool, logger *slog.Logger) *Game {
	view := render.DefaultView()
	view.XRot, view.YRot = vc.XRotation, vc.YRotation
	if vc.Width > 0 {
		view.Width = vc.Width
	}
	if vc.Height > 0 {
		view.Height = vc.Height
	}
	if vc.PointSize > 0 {
		view.PointSize = vc.PointSize
	}
	g := &Game{
		eng:        eng,
		painter:    render.NewPainter(view.Width, view.Height),
		hud:        ui.NewHUD(eng, vc.HUDWidth),
		log:        logger,
		view:       view,
		rotateStep: vc.RotateStep,
		ticker:     core.NewFixedInterval(vc.AutoplayInterval),
	}
	if autoplay {
		g.startAutoplay()
	}
	return g
}

func (g *Game) startAutoplay() {
	g.autoplay = true
	g.ticker.Restart()
}

func (g *Game) step() {
	g.eng.Step()
	if g.counting {
		s := g.eng.LastStep()
		g.log.Info("generation", "gen", g.eng.Generation(), "live", s.Live(), "births", s.Births, "deaths", s.Deaths)
	}
}

// Update handles key bindings and advances the engine.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.eng.Seed()
		g.log.Info("reseeded", "live", g.eng.LiveCount())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.counting = !g.counting
		if g.counting {
			g.log.Info("counting on", "gen", g.eng.Generation(), "live", g.eng.LiveCount())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		PrintCommands(os.Stdout)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && !g.autoplay {
		g.step()
		g.startAutoplay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.autoplay = false
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		g.view.Rotate(-g.rotateStep, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		g.view.Rotate(g.rotateStep, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.view.Rotate(0, -g.rotateStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.view.Rotate(0, g.rotateStep)
	}

	if g.autoplay && g.ticker.ShouldStep() {
		g.step()
	}

	status := ui.Status{
		Generation: g.eng.Generation(),
		Volume:     g.eng.Size().Volume(),
		Counting:   g.counting,
		Autoplay:   g.autoplay,
	}
	if g.counting {
		status.Live = g.eng.LiveCount()
	}
	g.hud.Update(g.view.Width, status)
	return nil
}

// Draw renders the volume and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	g.painter.Draw(screen, g.eng.Current(), g.view)
	g.hud.Draw(screen, g.view.Height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.Width + g.hud.Width(), g.view.Height
}

// WindowSize returns the initial window size.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
