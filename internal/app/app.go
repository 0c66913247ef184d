//go:build ebiten

package app

import (
	"errors"

	"wavefd/internal/core"
	"wavefd/internal/render"
	"wavefd/internal/ui"
	"wavefd/pkg/wave"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	timer   *core.FixedStep
	style   render.Style

	scale    int
	stepsPer int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation. Ebiten's own TPS is
// left at its default; cfg.TPS sets the simulation tick rate.
func New(sim core.Sim, cfg *Config) *Game {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(sim.Size()),
		hud:      ui.NewHUD(sim, cfg.HUDWidth),
		overlay:  ui.NewOverlay(sim, scale),
		timer:    core.NewFixedStep(cfg.TPS),
		style:    render.StyleFor(sim),
		scale:    scale,
		stepsPer: max(1, cfg.StepsPer),
	}
}

// Reset rebuilds the simulation from its configuration.
func (g *Game) Reset() error {
	g.tickOnce = false
	return g.sim.Reset()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.style.Palette = (g.style.Palette + 1) % 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(); err != nil {
			return err
		}
	}
	g.overlay.Update()

	ticks := g.timer.Due()
	if g.paused {
		ticks = 0
	}
	if g.tickOnce {
		ticks, g.tickOnce = 1, false
	}
	for i := 0; i < ticks*g.stepsPer && !g.sim.Done(); i++ {
		if err := g.sim.Step(); err != nil && !errors.Is(err, wave.ErrTerminated) {
			return err
		}
	}
	g.hud.Update(g.paused)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Snapshot(), g.style, g.scale)
	g.overlay.Draw(screen)
	w, h := g.painter.Size()
	g.hud.Draw(screen, w*g.scale, h*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w*g.scale + g.hud.Width(), h * g.scale
}
