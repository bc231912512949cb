// Package memory implements an exemplar store that maps 3x3 colour contexts to
// centre colours and answers queries by distance-weighted interpolation.
package memory

import (
	"errors"
	"fmt"

	"texca/pkg/grid"
)

// ErrEmptyMemory is returned when a retriever is requested before any pair
// was mapped.
var ErrEmptyMemory = errors.New("memory: no patterns mapped")

// ErrPairShape is returned when a mapped pair does not hold a ContextLen
// context and a CellLen target.
var ErrPairShape = errors.New("memory: malformed pair")

// Pair associates a context vector with the target vector it predicts.
type Pair struct {
	Context grid.Vector
	Target  grid.Vector
}

// NewPair copies the provided vectors so the pair cannot be mutated through
// the caller's slices.
func NewPair(context, target grid.Vector) Pair {
	return Pair{
		Context: append(grid.Vector(nil), context...),
		Target:  append(grid.Vector(nil), target...),
	}
}

// PairFromArea builds the pair learned from a single neighbourhood.
func PairFromArea(a grid.Area) Pair {
	return Pair{Context: a.Context(), Target: a.Target().Vector()}
}

// Memory is an append-only list of pairs. Identical contexts are kept side by
// side and all of them take part in retrieval.
type Memory struct {
	pairs []Pair
}

// New returns an empty Memory.
func New() *Memory { return &Memory{} }

// Map appends a copy of p.
func (m *Memory) Map(p Pair) {
	m.pairs = append(m.pairs, NewPair(p.Context, p.Target))
}

// MapArea appends the pair learned from a.
func (m *Memory) MapArea(a grid.Area) {
	m.Map(PairFromArea(a))
}

// Len reports the number of stored pairs.
func (m *Memory) Len() int { return len(m.pairs) }

// Pairs exposes the stored pairs in insertion order. Callers must not modify
// the returned slice.
func (m *Memory) Pairs() []Pair { return m.pairs }

// Evaluate binds k to a deep copy of the pairs stored so far. Neither later
// Map calls nor writes through Pairs are visible to the returned Retriever.
func (m *Memory) Evaluate(k Kernel) (*Retriever, error) {
	if len(m.pairs) == 0 {
		return nil, ErrEmptyMemory
	}
	if k == nil {
		return nil, errors.New("memory: nil kernel")
	}
	frozen := make([]Pair, len(m.pairs))
	for i, p := range m.pairs {
		if len(p.Context) != grid.ContextLen || len(p.Target) != grid.CellLen {
			return nil, fmt.Errorf("%w: pair %d has %d context and %d target components",
				ErrPairShape, i, len(p.Context), len(p.Target))
		}
		frozen[i] = NewPair(p.Context, p.Target)
	}
	return &Retriever{pairs: frozen, kernel: k}, nil
}
