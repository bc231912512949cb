package sample

import (
	"math"

	"github.com/aquilax/go-perlin"

	"texca/pkg/grid"
)

// Procedural noise parameters.
const (
	noiseAlpha = 2
	noiseBeta  = 2
	noiseOct   = 3
	noiseFreq  = 0.15
)

// Procedural synthesises a w*h sample by thresholding Perlin noise into
// patches of low and high colours with a soft border. It stands in for a
// sample image when none is supplied.
func Procedural(w, h int, seed int64, low, high grid.Cell) *grid.Grid {
	g := grid.NewGrid(w, h)
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOct, seed)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			n := p.Noise2D(float64(x)*noiseFreq, float64(y)*noiseFreq)
			// Noise2D stays roughly within [-1,1]; steepen it into a mask.
			t := 0.5 + 0.5*math.Tanh(4*n)
			g.Set(x, y, lerp(low, high, t))
		}
	}
	return g
}

func lerp(a, b grid.Cell, t float64) grid.Cell {
	var c grid.Cell
	for k := range c {
		c[k] = uint8(math.Round(float64(a[k]) + (float64(b[k])-float64(a[k]))*t))
	}
	return c
}
