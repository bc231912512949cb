package memory

import (
	"errors"
	"math"
	"testing"

	"texca/pkg/grid"
)

func TestEvaluateEmptyMemory(t *testing.T) {
	m := New()
	if _, err := m.Evaluate(Exponential{Sharpness: 1}); !errors.Is(err, ErrEmptyMemory) {
		t.Fatalf("expected ErrEmptyMemory, got %v", err)
	}
}

func TestMapKeepsDuplicates(t *testing.T) {
	m := New()
	a := grid.UniformArea(grid.Cell{10, 20, 30})
	m.MapArea(a)
	m.MapArea(a)
	if m.Len() != 2 {
		t.Fatalf("identical contexts must not be merged, got %d pairs", m.Len())
	}
}

func TestSinglePairAnswersEveryQuery(t *testing.T) {
	target := grid.Cell{200, 17, 99}
	m := New()
	m.Map(NewPair(grid.UniformArea(grid.Cell{0, 0, 0}).Context(), target.Vector()))

	kernels := []Kernel{
		Exponential{Sharpness: 0.01},
		Exponential{Sharpness: 10},
		Exponential{Sharpness: 1e6},
	}
	queries := []grid.Vector{
		grid.UniformArea(grid.Cell{0, 0, 0}).Context(),
		grid.UniformArea(grid.Cell{255, 255, 255}).Context(),
		grid.UniformArea(grid.Cell{3, 140, 77}).Context(),
	}
	for _, k := range kernels {
		r, err := m.Evaluate(k)
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		for _, q := range queries {
			if got := r.Get(q); got != target {
				t.Fatalf("kernel %+v query %v returned %v, expected %v", k, q[:3], got, target)
			}
		}
	}
}

func TestGetBlendsByDistance(t *testing.T) {
	black := grid.UniformArea(grid.Cell{0, 0, 0})
	white := grid.UniformArea(grid.Cell{255, 255, 255})

	m := New()
	m.Map(NewPair(black.Context(), grid.Cell{0, 0, 0}.Vector()))
	m.Map(NewPair(white.Context(), grid.Cell{255, 255, 255}.Vector()))

	soft, err := m.Evaluate(Exponential{Sharpness: 1e-9})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	mid := soft.GetArea(black)
	if mid[0] < 126 || mid[0] > 128 {
		t.Fatalf("a flat kernel should average both targets, got %v", mid)
	}

	sharp, err := m.Evaluate(Exponential{Sharpness: 50})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if got := sharp.GetArea(black); got != (grid.Cell{0, 0, 0}) {
		t.Fatalf("a sharp kernel should pick the nearest pattern, got %v", got)
	}
	if got := sharp.GetArea(white); got != (grid.Cell{255, 255, 255}) {
		t.Fatalf("a sharp kernel should pick the nearest pattern, got %v", got)
	}
}

func TestGetFallsBackToNearestWhenWeightsVanish(t *testing.T) {
	m := New()
	m.Map(NewPair(grid.UniformArea(grid.Cell{0, 0, 0}).Context(), grid.Cell{1, 1, 1}.Vector()))
	m.Map(NewPair(grid.UniformArea(grid.Cell{100, 100, 100}).Context(), grid.Cell{2, 2, 2}.Vector()))

	// exp(-1e6*d) underflows to zero for every stored pattern.
	r, err := m.Evaluate(Exponential{Sharpness: 1e6})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	q := grid.UniformArea(grid.Cell{90, 90, 90}).Context()
	if got := r.Get(q); got != (grid.Cell{2, 2, 2}) {
		t.Fatalf("expected nearest target {2,2,2}, got %v", got)
	}
}

func TestEvaluateFreezesPairs(t *testing.T) {
	m := New()
	m.MapArea(grid.UniformArea(grid.Cell{5, 5, 5}))
	r, err := m.Evaluate(Exponential{Sharpness: 1})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	m.MapArea(grid.UniformArea(grid.Cell{250, 250, 250}))
	if r.Len() != 1 {
		t.Fatalf("retriever should not observe pairs mapped after Evaluate, has %d", r.Len())
	}
	if got := r.GetArea(grid.UniformArea(grid.Cell{250, 250, 250})); got != (grid.Cell{5, 5, 5}) {
		t.Fatalf("expected frozen answer {5,5,5}, got %v", got)
	}
}

func TestNewPairCopies(t *testing.T) {
	ctx := grid.UniformArea(grid.Cell{9, 9, 9}).Context()
	target := grid.Cell{1, 2, 3}.Vector()
	p := NewPair(ctx, target)
	ctx[0] = 42
	target[0] = 42
	if p.Context[0] == 42 || p.Target[0] == 42 {
		t.Fatal("NewPair must not alias the caller's slices")
	}
	if math.Abs(p.Target[0]-1.0/255) > 1e-12 {
		t.Fatalf("unexpected target component %f", p.Target[0])
	}
}

func TestEvaluateRejectsMalformedPairs(t *testing.T) {
	m := New()
	m.MapArea(grid.UniformArea(grid.Cell{1, 1, 1}))
	m.Map(NewPair(grid.Vector{0, 0, 0}, grid.Cell{1, 2, 3}.Vector()))
	if _, err := m.Evaluate(Exponential{Sharpness: 1}); !errors.Is(err, ErrPairShape) {
		t.Fatalf("short context should be rejected, got %v", err)
	}

	m = New()
	m.Map(NewPair(grid.UniformArea(grid.Cell{}).Context(), grid.Vector{0.5}))
	if _, err := m.Evaluate(Exponential{Sharpness: 1}); !errors.Is(err, ErrPairShape) {
		t.Fatalf("short target should be rejected, got %v", err)
	}
}

func TestRetrieverIgnoresWritesToMappedSlices(t *testing.T) {
	ctx := grid.UniformArea(grid.Cell{7, 7, 7}).Context()
	tgt := grid.Cell{10, 10, 10}.Vector()
	m := New()
	m.Map(Pair{Context: ctx, Target: tgt})

	r, err := m.Evaluate(Exponential{Sharpness: 1})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	tgt[0] = 1
	ctx[0] = 1
	m.Pairs()[0].Target[1] = 1

	if got := r.Get(grid.UniformArea(grid.Cell{7, 7, 7}).Context()); got != (grid.Cell{10, 10, 10}) {
		t.Fatalf("retriever answer changed to %v after writes to mapped slices", got)
	}
	if m.Pairs()[0].Target[0] != 10.0/255 {
		t.Fatal("Map must not alias the caller's target slice")
	}
}

func TestBlendOfIdenticalTargetsIsExact(t *testing.T) {
	contexts := []grid.Cell{{0, 0, 0}, {40, 90, 200}, {128, 128, 128}, {255, 3, 77}, {19, 250, 61}}
	query := grid.UniformArea(grid.Cell{100, 60, 30}).Context()
	for v := 0; v < 256; v++ {
		target := grid.Cell{uint8(v), uint8(v), uint8(v)}
		m := New()
		for _, c := range contexts {
			m.Map(NewPair(grid.UniformArea(c).Context(), target.Vector()))
		}
		r, err := m.Evaluate(Exponential{Sharpness: 2.7})
		if err != nil {
			t.Fatalf("evaluate: %v", err)
		}
		if got := r.Get(query); got != target {
			t.Fatalf("blend of %v targets returned %v", target, got)
		}
	}
}
