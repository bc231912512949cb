package texture

import (
	"errors"

	"texca/internal/core"
	"texca/pkg/grid"
)

// World evolves a toroidal colour grid by replacing every cell with the
// colour the model retrieves for its neighbourhood.
type World struct {
	cfg   Config
	model *Model

	size int
	bufs [2]*grid.Grid
	cur  int

	steps uint64
	ctx   grid.Vector
}

// ErrNoModel is returned by New when no trained retriever is supplied.
var ErrNoModel = errors.New("texture: world needs a trained model")

// New returns a World of cfg.GridSize cells per side driven by model. The
// grids start black; call Reset to seed them.
func New(cfg Config, model *Model) (*World, error) {
	if model == nil || model.Retriever == nil {
		return nil, ErrNoModel
	}
	size := cfg.GridSize
	if size <= 0 {
		size = DefaultConfig().GridSize
	}
	return &World{
		cfg:   cfg,
		model: model,
		size:  size,
		bufs:  [2]*grid.Grid{grid.NewGrid(size, size), grid.NewGrid(size, size)},
		ctx:   make(grid.Vector, 0, grid.ContextLen),
	}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "texture" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.size, H: w.size} }

// Cells exposes the current grid as packed RGB.
func (w *World) Cells() []uint8 { return w.bufs[w.cur].Cells() }

// Current returns the grid that is displayed and read during a step.
func (w *World) Current() *grid.Grid { return w.bufs[w.cur] }

// Next returns the grid written during a step.
func (w *World) Next() *grid.Grid { return w.bufs[1-w.cur] }

// Steps reports how many steps completed since the last Reset.
func (w *World) Steps() uint64 { return w.steps }

// Model returns the trained model driving the world.
func (w *World) Model() *Model { return w.model }

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Reset fills the current grid with random colours and mirrors it into the
// next grid. A zero seed selects the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	cur := w.Current()
	cur.Randomize(grid.NewRNG(seed))
	w.Next().CopyFrom(cur)
	w.steps = 0
}

// Step rewrites every cell of the next grid from the current grid and then
// swaps their roles.
func (w *World) Step() {
	cur, nxt := w.Current(), w.Next()
	r := w.model.Retriever
	for y := 0; y < w.size; y++ {
		for x := 0; x < w.size; x++ {
			w.ctx = cur.Area(x, y).AppendContext(w.ctx[:0])
			nxt.Set(x, y, r.Get(w.ctx))
		}
	}
	w.cur = 1 - w.cur
	w.steps++
}
