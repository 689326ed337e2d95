package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// TimeSeed returns a seed derived from the wall clock.
func TimeSeed() int64 { return time.Now().UnixNano() }

// Chance reports true with probability p using the provided source. Values
// outside [0, 1] saturate.
func Chance(r *rand.Rand, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return r.Float64() < p
}

// FillBinary fills the buffer with 0/1 values, each 1 with probability p.
func FillBinary(r *rand.Rand, buf []uint8, p float64) {
	for i := range buf {
		buf[i] = 0
		if Chance(r, p) {
			buf[i] = 1
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
