package texture

import (
	"fmt"

	"texca/pkg/grid"
	"texca/pkg/memory"
)

// Model is the trained, read-only state shared by every World built from the
// same sample.
type Model struct {
	Retriever *memory.Retriever
	Kernel    memory.Threshold
	Patterns  int
}

// Train samples src, calibrates the kernel from the configured references and
// freezes the resulting memory.
func Train(cfg Config, src *grid.Grid) (*Model, error) {
	if src == nil {
		return nil, fmt.Errorf("train: nil sample")
	}
	mem := memory.New()
	n := mem.Train(src, cfg.SampleCount)

	near, far, err := cfg.Kernel.References()
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	kernel, err := memory.NewThreshold(
		memory.Exponential{Sharpness: cfg.Kernel.BaseSharpness},
		near, far,
		cfg.Kernel.NearWeight, cfg.Kernel.FarWeight,
	)
	if err != nil {
		return nil, fmt.Errorf("train: calibrate kernel: %w", err)
	}

	r, err := mem.Evaluate(kernel)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}
	return &Model{Retriever: r, Kernel: kernel, Patterns: n}, nil
}
