//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"texca/internal/app"
	"texca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}

	sim := world.Config()
	step := core.StepFromSeconds(sim.TimestepSeconds)
	game := app.New(world, cfg.WindowSize, step, sim.Seed)
	if cfg.HUD {
		game.ShowHUD()
	}

	ebiten.SetWindowTitle("texca: " + world.Name())
	ebiten.SetWindowSize(cfg.WindowSize, cfg.WindowSize)
	// Update must run at least as often as the simulation timestep.
	tps := int(1/step.Seconds()) + 1
	ebiten.SetTPS(max(tps, ebiten.DefaultTPS))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
