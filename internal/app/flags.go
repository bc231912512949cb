package app

import (
	"flag"
	"strconv"
	"strings"

	"texca/internal/sims/texture"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set implements flag.Value.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map returns the collected pairs; later keys override earlier ones and
// entries without '=' are dropped.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}

// Config represents the command-line parameters for the application.
type Config struct {
	Image         string
	MaxSampleSide int
	WindowSize    int
	Seed          int64
	GridSize      int
	SampleCount   int
	Timestep      float64
	HUD           bool
	Overrides     KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := texture.DefaultConfig()
	return &Config{
		WindowSize:  800,
		Seed:        def.Seed,
		GridSize:    def.GridSize,
		SampleCount: def.SampleCount,
		Timestep:    def.TimestepSeconds,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Image, "image", c.Image, "sample image to learn from (procedural noise when empty)")
	fs.IntVar(&c.MaxSampleSide, "max-sample", c.MaxSampleSide, "downscale the sample so no side exceeds this (0 keeps it)")
	fs.IntVar(&c.WindowSize, "window", c.WindowSize, "window width and height in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial random grid")
	fs.IntVar(&c.GridSize, "grid", c.GridSize, "grid cells per side")
	fs.IntVar(&c.SampleCount, "samples", c.SampleCount, "training stratification divisor")
	fs.Float64Var(&c.Timestep, "timestep", c.Timestep, "simulation tick period in seconds")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel at startup")
	fs.Var(&c.Overrides, "set", "simulation override in key=value form (repeatable)")
}

// Sim builds the simulation configuration. Explicit flags are applied first
// and -set overrides win.
func (c *Config) Sim() texture.Config {
	m := map[string]string{
		"grid_size":        strconv.Itoa(c.GridSize),
		"sample_count":     strconv.Itoa(c.SampleCount),
		"timestep_seconds": strconv.FormatFloat(c.Timestep, 'g', -1, 64),
		"seed":             strconv.FormatInt(c.Seed, 10),
	}
	for k, v := range c.Overrides.Map() {
		m[k] = v
	}
	return texture.FromMap(m)
}
