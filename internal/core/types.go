package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract the window loop drives.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	// Cells returns the displayable grid as packed RGB, three bytes per cell.
	Cells() []uint8
}
