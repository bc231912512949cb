package grid

import (
	"math"
	"testing"
)

func TestCellVectorRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := Cell{uint8(v), uint8(255 - v), uint8((v * 7) % 256)}
		vec := c.Vector()
		if len(vec) != CellLen {
			t.Fatalf("cell vector length %d, expected %d", len(vec), CellLen)
		}
		for k, f := range vec {
			if f < 0 || f > 1 {
				t.Fatalf("component %d of %v out of range: %f", k, c, f)
			}
		}
		if got := CellFromVector(vec); got != c {
			t.Fatalf("round trip of %v produced %v", c, got)
		}
	}
}

func TestCellFromVectorClamps(t *testing.T) {
	got := CellFromVector(Vector{-0.5, 1.7, math.NaN()})
	if got != (Cell{0, 255, 0}) {
		t.Fatalf("expected clamped cell {0,255,0}, got %v", got)
	}

	got = CellFromVector(Vector{0.5, 0.999, 0})
	if got != (Cell{127, 254, 0}) {
		t.Fatalf("expected truncation to {127,254,0}, got %v", got)
	}
}

func TestAreaContextOrder(t *testing.T) {
	var a Area
	n := uint8(0)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			a[row][col] = Cell{n, n, n}
			n++
		}
	}

	ctx := a.Context()
	if len(ctx) != ContextLen {
		t.Fatalf("context length %d, expected %d", len(ctx), ContextLen)
	}

	want := []uint8{0, 1, 2, 3, 5, 6, 7, 8}
	for i, w := range want {
		for k := 0; k < CellLen; k++ {
			if got := ctx[i*CellLen+k]; got != float64(w)/255 {
				t.Fatalf("context slot %d channel %d = %f, expected cell %d", i, k, got, w)
			}
		}
	}

	if a.Target() != (Cell{4, 4, 4}) {
		t.Fatalf("target should be the centre cell, got %v", a.Target())
	}
}

func TestAppendContextReusesBuffer(t *testing.T) {
	a := UniformArea(Cell{255, 0, 51})
	buf := make(Vector, 0, ContextLen)
	out := a.AppendContext(buf[:0])
	if &out[0] != &buf[:1][0] {
		t.Fatal("AppendContext should write into the provided buffer when capacity allows")
	}
	for i := 0; i < ContextLen; i += CellLen {
		if out[i] != 1 || out[i+1] != 0 || out[i+2] != 0.2 {
			t.Fatalf("unexpected context cell at %d: %v", i, out[i:i+CellLen])
		}
	}
}
