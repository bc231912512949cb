//go:build ebiten

package app

import (
	"time"

	"texca/internal/core"
	"texca/internal/render"
	"texca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface. Drawing happens
// every frame; stepping is gated by a fixed timestep.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	timer   *core.FixedStep

	window   int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation drawn into a square
// window of the given size.
func New(sim core.Sim, window int, step time.Duration, seed int64) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim),
		timer:   core.NewFixedStep(step),
		window:  window,
		seed:    seed,
	}
}

// ShowHUD toggles the parameter panel.
func (g *Game) ShowHUD() { g.hud.Toggle() }

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation when a timestep
// has elapsed.
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
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	due := g.timer.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}

	g.hud.Update()
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.cellSize())
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.window, g.window
}

func (g *Game) cellSize() float64 {
	s := g.sim.Size()
	side := max(s.W, s.H)
	if side <= 0 {
		return 1
	}
	return float64(g.window) / float64(side)
}
