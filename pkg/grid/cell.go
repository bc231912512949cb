package grid

const (
	// CellLen is the number of components in a vectorized Cell.
	CellLen = 3
	// ContextLen is the number of components in a vectorized Area context.
	ContextLen = 8 * CellLen
)

// Cell is a single RGB colour.
type Cell [3]uint8

// Vector is a fixed-length sequence of normalized components.
type Vector []float64

// Vector returns the cell channels scaled into [0,1].
func (c Cell) Vector() Vector {
	return Vector{
		float64(c[0]) / 255,
		float64(c[1]) / 255,
		float64(c[2]) / 255,
	}
}

// CellFromVector clamps each component to [0,1] and quantizes it back to 8 bits.
// Only the first CellLen components are read.
func CellFromVector(v Vector) Cell {
	var c Cell
	for k := 0; k < CellLen && k < len(v); k++ {
		c[k] = quantize(v[k])
	}
	return c
}

func quantize(f float64) uint8 {
	// NaN fails both comparisons and would otherwise convert to an arbitrary byte.
	if !(f > 0) {
		return 0
	}
	if f >= 1 {
		return 255
	}
	// A normalised blend of identical targets can land just below v/255.
	return uint8(f*255 + quantizeEpsilon)
}

const quantizeEpsilon = 1e-7

// Area is a 3x3 neighbourhood indexed by [dy+1][dx+1]. The centre is the
// target, the remaining eight cells are the context.
type Area [3][3]Cell

// Target returns the centre cell.
func (a Area) Target() Cell { return a[1][1] }

// Context vectorizes the eight surrounding cells in row-major order.
func (a Area) Context() Vector {
	return a.AppendContext(make(Vector, 0, ContextLen))
}

// AppendContext appends the context vector to dst and returns the extended
// slice, letting hot loops reuse a buffer.
func (a Area) AppendContext(dst Vector) Vector {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if row == 1 && col == 1 {
				continue
			}
			c := a[row][col]
			dst = append(dst, float64(c[0])/255, float64(c[1])/255, float64(c[2])/255)
		}
	}
	return dst
}

// UniformArea returns an Area filled with a single colour.
func UniformArea(c Cell) Area {
	var a Area
	for row := range a {
		for col := range a[row] {
			a[row][col] = c
		}
	}
	return a
}
