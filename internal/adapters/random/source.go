// Package random provides the seeded random source of the simulation.
package random

import (
	"math/rand/v2"

	"github.com/SscSPs/storefront_sim/internal/core/ports"
)

// Source is a PCG-backed ports.RandomSource. It is not safe for concurrent
// use; the simulation loop is its only caller.
type Source struct {
	rng *rand.Rand
}

// NewSource creates a source that replays the same sequence for the same seed.
func NewSource(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

var _ ports.RandomSource = (*Source)(nil)

func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// IntN returns 0 for n <= 0 instead of panicking.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.IntN(n)
}
