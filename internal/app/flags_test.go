package app

import (
	"flag"
	"testing"
)

func TestConfigSimAppliesFlagsAndOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{
		"-grid", "48",
		"-samples", "12",
		"-timestep", "0.05",
		"-seed", "9",
		"-set", "grid_size=64",
		"-set", "far_color=#00ff00",
		"-set", "junk",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	sim := cfg.Sim()
	if sim.GridSize != 64 {
		t.Fatalf("-set should override -grid, got %d", sim.GridSize)
	}
	if sim.SampleCount != 12 || sim.TimestepSeconds != 0.05 || sim.Seed != 9 {
		t.Fatalf("flags not applied: %+v", sim)
	}
	if sim.Kernel.FarColor != "#00ff00" {
		t.Fatalf("far colour override not applied: %q", sim.Kernel.FarColor)
	}
}

func TestKVListMap(t *testing.T) {
	var l KVList
	_ = l.Set("a=1")
	_ = l.Set(" b = 2 ")
	_ = l.Set("a=3")
	_ = l.Set("novalue")
	m := l.Map()
	if len(m) != 2 || m["a"] != "3" || m["b"] != "2" {
		t.Fatalf("unexpected map %v", m)
	}
	if l.String() != "a=1, b = 2 ,a=3,novalue" {
		t.Fatalf("unexpected string %q", l.String())
	}
}
