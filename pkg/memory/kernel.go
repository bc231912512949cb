package memory

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"texca/pkg/grid"
)

// Kernel converts a distance between contexts into a retrieval weight.
type Kernel interface {
	Weight(d float64) float64
}

// Exponential weighs distances with exp(-Sharpness*d). Larger sharpness
// approaches nearest-pattern lookup.
type Exponential struct {
	Sharpness float64
}

// Weight implements Kernel.
func (e Exponential) Weight(d float64) float64 {
	return math.Exp(-e.Sharpness * d)
}

// Threshold is an exponential kernel calibrated against a near and a far
// reference distance. Scale only anchors absolute weights; it cancels when
// weights are normalized.
type Threshold struct {
	Exponential
	Scale float64
}

// Weight implements Kernel.
func (t Threshold) Weight(d float64) float64 {
	return t.Scale * t.Exponential.Weight(d)
}

// Calibrate solves for the sharpness that maps dNear to wNear and dFar to
// wFar. When the reference distances do not separate (dFar <= dNear) the base
// sharpness is kept.
func Calibrate(base Exponential, dNear, dFar, wNear, wFar float64) (Threshold, error) {
	if !(wNear > 0 && wNear <= 1) || !(wFar > 0 && wFar <= 1) {
		return Threshold{}, fmt.Errorf("memory: calibration weights must lie in (0,1], got near=%g far=%g", wNear, wFar)
	}
	if wNear <= wFar {
		return Threshold{}, fmt.Errorf("memory: near weight %g must exceed far weight %g", wNear, wFar)
	}
	if base.Sharpness <= 0 {
		return Threshold{}, fmt.Errorf("memory: base sharpness must be positive, got %g", base.Sharpness)
	}
	sharpness := base.Sharpness
	if dFar > dNear {
		sharpness = math.Log(wNear/wFar) / (dFar - dNear)
	}
	k := Exponential{Sharpness: sharpness}
	return Threshold{Exponential: k, Scale: wNear / k.Weight(dNear)}, nil
}

// NewThreshold calibrates base against two reference neighbourhoods. The near
// reference sits at distance zero from itself; the far distance is measured
// between the two context vectors.
func NewThreshold(base Exponential, near, far grid.Area, wNear, wFar float64) (Threshold, error) {
	dFar := floats.Distance(near.Context(), far.Context(), 2)
	return Calibrate(base, 0, dFar, wNear, wFar)
}
