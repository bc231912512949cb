package grid

import (
	"image"
	"image/color"
)

// Grid stores a toroidal 2D grid of RGB cells, packed row-major with three
// bytes per cell.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a black grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, CellLen*w*h)}
}

// Cells exposes the packed RGB backing slice.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the offset of the first channel of (x, y) in Cells.
func (g *Grid) Index(x, y int) int { return CellLen * (y*g.W + x) }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At returns the cell at (x, y) after wrapping both axes.
func (g *Grid) At(x, y int) Cell {
	x, y = g.Wrap(x, y)
	i := g.Index(x, y)
	return Cell{g.data[i], g.data[i+1], g.data[i+2]}
}

// Set stores c at (x, y) after wrapping both axes.
func (g *Grid) Set(x, y int, c Cell) {
	x, y = g.Wrap(x, y)
	i := g.Index(x, y)
	g.data[i], g.data[i+1], g.data[i+2] = c[0], c[1], c[2]
}

// Area gathers the 3x3 neighbourhood centred on (x, y).
func (g *Grid) Area(x, y int) Area {
	var a Area
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			a[dy+1][dx+1] = g.At(x+dx, y+dy)
		}
	}
	return a
}

// CopyFrom overwrites g with the contents of src. Dimensions must match.
func (g *Grid) CopyFrom(src *Grid) bool {
	if src == nil || src.W != g.W || src.H != g.H {
		return false
	}
	copy(g.data, src.data)
	return true
}

// Randomize fills every channel with an independent uniform byte.
func (g *Grid) Randomize(r *RNG) {
	r.FillBytes(g.data)
}

// GridFromImage copies the RGB channels of img into a new Grid. Alpha is
// discarded.
func GridFromImage(img image.Image) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			g.Set(x, y, Cell{c.R, c.G, c.B})
		}
	}
	return g
}

// Image renders the grid as an opaque RGBA image, one pixel per cell.
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	for i := 0; i < g.W*g.H; i++ {
		src := i * CellLen
		dst := i * 4
		img.Pix[dst+0] = g.data[src+0]
		img.Pix[dst+1] = g.data[src+1]
		img.Pix[dst+2] = g.data[src+2]
		img.Pix[dst+3] = 0xff
	}
	return img
}
