// Package rng draws unbiased bounded integers for the game.
package rng

import (
	"math"

	"golang.org/x/exp/rand"
)

// Random samples integers uniformly from a 64-bit source
type Random struct {
	src  rand.Source
	rand *rand.Rand
}

// New returns a Random backed by a PCG source seeded with seed
func New(seed uint64) *Random {
	return FromSource(rand.NewSource(seed))
}

// FromSource wraps an existing source, mainly so tests can script samples
func FromSource(src rand.Source) *Random {
	return &Random{src: src, rand: rand.New(src)}
}

// Uniform returns an integer in [0, bound).
// Samples in the top partial bucket are rejected so the remainder is not biased.
// It panics if bound is not positive.
func (r *Random) Uniform(bound int) int {
	if bound <= 0 {
		panic("rng: Uniform bound must be positive")
	}
	b := uint64(bound)
	limit := math.MaxUint64 - (math.MaxUint64 % b)
	v := r.src.Uint64()
	for v >= limit {
		v = r.src.Uint64()
	}
	return int(v % b)
}

// Float64 returns a value in [0, 1)
func (r *Random) Float64() float64 {
	return r.rand.Float64()
}
