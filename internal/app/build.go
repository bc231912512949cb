package app

import (
	"fmt"
	"log"

	"texca/internal/sample"
	"texca/internal/sims/texture"
	"texca/pkg/grid"
)

// proceduralSide is the size of the generated sample used without -image.
const proceduralSide = 128

// LoadSample returns the training sample described by c: the decoded -image
// when set, otherwise procedural noise in the calibration colours.
func (c *Config) LoadSample(sim texture.Config) (*grid.Grid, error) {
	if c.Image != "" {
		return sample.Load(c.Image, c.MaxSampleSide)
	}
	low, err := texture.ParseColor(sim.Kernel.NearColor)
	if err != nil {
		return nil, err
	}
	high, err := texture.ParseColor(sim.Kernel.FarColor)
	if err != nil {
		return nil, err
	}
	return sample.Procedural(proceduralSide, proceduralSide, sim.Seed, low, high), nil
}

// Train loads the sample and trains the model shared by every world.
func (c *Config) Train() (texture.Config, *texture.Model, error) {
	sim := c.Sim()
	src, err := c.LoadSample(sim)
	if err != nil {
		return sim, nil, err
	}
	model, err := texture.Train(sim, src)
	if err != nil {
		return sim, nil, err
	}
	name := c.Image
	if name == "" {
		name = "procedural noise"
	}
	log.Printf("trained %d patterns from %s (%dx%d), kernel sharpness %.4f",
		model.Patterns, name, src.W, src.H, model.Kernel.Sharpness)
	return sim, model, nil
}

// Build trains a model and returns a seeded world ready to step.
func (c *Config) Build() (*texture.World, error) {
	sim, model, err := c.Train()
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	world, err := texture.New(sim, model)
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	world.Reset(sim.Seed)
	return world, nil
}
