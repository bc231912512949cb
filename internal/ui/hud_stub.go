//go:build !ebiten

package ui

import "texca/internal/core"

// HUD is the headless stand-in for the grid, memory, kernel and clock panel.
type HUD struct{}

// NewHUD returns nil; there is no window to draw the panel on.
func NewHUD(core.Sim) *HUD { return nil }

func (h *HUD) Toggle() {}

func (h *HUD) Update() {}

func (h *HUD) Draw(any) {}
