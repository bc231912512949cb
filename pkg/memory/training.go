package memory

import "texca/pkg/grid"

// DefaultSampleCount is the stratification divisor used when none is given.
const DefaultSampleCount = 10

// Stride returns the sampling stride for an image of w*h pixels and sample
// count m. It is never smaller than one.
func Stride(w, h, m int) int {
	if m <= 0 {
		m = 1
	}
	stride := (w * h) / m
	if stride < 1 {
		stride = 1
	}
	return stride
}

// Keep reports whether pixel (x, y) of a w*h image is part of the training
// sample. Two interleaved diagonal stripes are kept: one stepping through
// column-major indices, the other through row-major indices.
func Keep(x, y, w, h, stride int) bool {
	return (x*h+y)%stride == 0 || (y*w+x)%stride == 0
}

// SampleCount reports how many pixels Sample keeps without building pairs.
func SampleCount(w, h, m int) int {
	stride := Stride(w, h, m)
	n := 0
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if Keep(x, y, w, h, stride) {
				n++
			}
		}
	}
	return n
}

// Sample scans src on a toroidal topology and returns the pairs learned from
// the kept pixels, in column-major scan order.
func Sample(src *grid.Grid, m int) []Pair {
	w, h := src.W, src.H
	stride := Stride(w, h, m)
	var pairs []Pair
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if !Keep(x, y, w, h, stride) {
				continue
			}
			pairs = append(pairs, PairFromArea(src.Area(x, y)))
		}
	}
	return pairs
}

// Train samples src and maps every resulting pair into m.
func (m *Memory) Train(src *grid.Grid, sampleCount int) int {
	pairs := Sample(src, sampleCount)
	for _, p := range pairs {
		m.Map(p)
	}
	return len(pairs)
}
