//go:build !ebiten

package app

import (
	"fmt"
	"time"

	"texca/internal/core"
)

// Game stands in for the texture window in builds without ebiten. Headless
// runs go through Config.Build and cmd/texca-snapshot instead.
type Game struct{}

// New panics: opening the texture window needs the ebiten build tag.
func New(core.Sim, int, time.Duration, int64) *Game {
	panic("app.New: texca window needs the 'ebiten' build tag")
}

// ShowHUD does nothing without a window to draw the parameter panel on.
func (g *Game) ShowHUD() {}

// Reset does nothing; reseed the World directly in headless code.
func (g *Game) Reset(int64) {}

// Update reports that no window loop is available.
func (g *Game) Update() error {
	return fmt.Errorf("app.Game.Update: texca window needs the 'ebiten' build tag")
}

func (g *Game) Draw(any) {}

func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
