package grid

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Byte returns a uniformly distributed byte.
func (r *RNG) Byte() uint8 {
	return uint8(r.r.Uint32())
}

// FillBytes fills buf with independent uniform bytes.
func (r *RNG) FillBytes(buf []uint8) {
	for i := 0; i < len(buf); {
		v := r.r.Uint64()
		for k := 0; k < 8 && i < len(buf); k++ {
			buf[i] = uint8(v >> (8 * k))
			i++
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
