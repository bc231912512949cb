package memory

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"texca/pkg/grid"
)

// Retriever answers queries against a frozen set of pairs. It is read-only
// and safe for concurrent use.
type Retriever struct {
	pairs  []Pair
	kernel Kernel
}

// Len reports the number of pairs participating in retrieval.
func (r *Retriever) Len() int { return len(r.pairs) }

// Kernel returns the bound kernel.
func (r *Retriever) Kernel() Kernel { return r.kernel }

// Get blends the targets of every stored pair, weighted by the kernel applied
// to the Euclidean distance between query and each pair's context. If the
// weights sum to zero the nearest pair's target is returned.
func (r *Retriever) Get(query grid.Vector) grid.Cell {
	var acc [grid.CellLen]float64
	sum := 0.0
	nearest, nearestDist := 0, math.Inf(1)
	for i, p := range r.pairs {
		d := floats.Distance(query, p.Context, 2)
		if d < nearestDist {
			nearest, nearestDist = i, d
		}
		w := r.kernel.Weight(d)
		if w <= 0 || math.IsNaN(w) {
			continue
		}
		floats.AddScaled(acc[:], w, p.Target)
		sum += w
	}
	if !(sum > 0) || math.IsInf(sum, 0) {
		return grid.CellFromVector(r.pairs[nearest].Target)
	}
	for k := range acc {
		acc[k] /= sum
	}
	return grid.CellFromVector(acc[:])
}

// GetArea queries with the context of a.
func (r *Retriever) GetArea(a grid.Area) grid.Cell {
	var buf [grid.ContextLen]float64
	return r.Get(a.AppendContext(buf[:0]))
}
