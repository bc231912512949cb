package texture

import (
	"fmt"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"

	"texca/pkg/grid"
	"texca/pkg/memory"
)

// KernelParams controls how the retrieval kernel is calibrated.
type KernelParams struct {
	BaseSharpness float64
	NearColor     string
	FarColor      string
	NearWeight    float64
	FarWeight     float64
}

// Config controls the texture simulation.
type Config struct {
	GridSize        int
	SampleCount     int
	TimestepSeconds float64

	Seed int64

	Kernel KernelParams
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		GridSize:        100,
		SampleCount:     memory.DefaultSampleCount,
		TimestepSeconds: 1.0 / 60.0,
		Seed:            42,
		Kernel: KernelParams{
			BaseSharpness: 10,
			NearColor:     "#ff6400",
			FarColor:      "#ffff00",
			NearWeight:    0.99,
			FarWeight:     0.01,
		},
	}
}

func lookup(cfg map[string]string, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := cfg[k]; ok {
			return v, true
		}
	}
	return "", false
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := lookup(cfg, "grid_size", "gridSize"); ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.GridSize = parsed
		}
	}
	if v, ok := lookup(cfg, "sample_count", "sampleCount"); ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SampleCount = parsed
		}
	}
	if v, ok := lookup(cfg, "timestep_seconds", "timestepSeconds"); ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.TimestepSeconds = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["base_sharpness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Kernel.BaseSharpness = parsed
		}
	}
	if v, ok := cfg["near_color"]; ok {
		if _, err := ParseColor(v); err == nil {
			c.Kernel.NearColor = v
		}
	}
	if v, ok := cfg["far_color"]; ok {
		if _, err := ParseColor(v); err == nil {
			c.Kernel.FarColor = v
		}
	}
	if v, ok := cfg["w_near"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			c.Kernel.NearWeight = parsed
		}
	}
	if v, ok := cfg["w_far"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			c.Kernel.FarWeight = parsed
		}
	}
	return c
}

// ParseColor decodes a hex colour such as "#ff6400".
func ParseColor(s string) (grid.Cell, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return grid.Cell{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return grid.Cell{r, g, b}, nil
}

// References returns the uniform near and far neighbourhoods used to
// calibrate the kernel.
func (p KernelParams) References() (near, far grid.Area, err error) {
	nc, err := ParseColor(p.NearColor)
	if err != nil {
		return near, far, fmt.Errorf("near reference: %w", err)
	}
	fc, err := ParseColor(p.FarColor)
	if err != nil {
		return near, far, fmt.Errorf("far reference: %w", err)
	}
	return grid.UniformArea(nc), grid.UniformArea(fc), nil
}
