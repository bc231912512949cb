//go:build ebiten

package ui

import (
	"image/color"

	"texca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a translucent parameter panel over the top-left corner of the
// simulation view.
type HUD struct {
	sim      core.Sim
	provider core.ParameterProvider
	visible  bool
	snapshot core.ParameterSnapshot
	lines    []hudLine
	panel    *ebiten.Image
}

type hudLine struct {
	text   string
	header bool
}

// NewHUD constructs a HUD for the provided simulation. The HUD starts hidden.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	if provider, ok := sim.(core.ParameterProvider); ok {
		h.provider = provider
	}
	return h
}

// Toggle flips HUD visibility.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Update refreshes the cached parameter snapshot while the HUD is visible.
func (h *HUD) Update() {
	if h == nil || !h.visible || h.provider == nil {
		return
	}
	h.snapshot = h.provider.Parameters()
	h.lines = h.lines[:0]
	h.lines = append(h.lines, hudLine{text: h.sim.Name(), header: true})
	for _, group := range h.snapshot.Groups {
		h.lines = append(h.lines, hudLine{text: group.Name, header: true})
		for _, p := range group.Params {
			h.lines = append(h.lines, hudLine{text: "  " + p.Label + ": " + p.Value})
		}
	}
}

// Draw paints the HUD panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	height := panelPadding*2 + len(h.lines)*lineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	for i, line := range h.lines {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if line.header {
			clr = color.RGBA{R: 255, G: 200, B: 90, A: 255}
		}
		y := panelPadding + i*lineHeight + baseline
		text.Draw(h.panel, line.text, face, panelPadding, y, clr)
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}

const (
	panelWidth   = 240
	panelPadding = 8
	lineHeight   = 16
	baseline     = 12
)
