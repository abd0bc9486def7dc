package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r    *rand.Rand
	seed int64
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0)), seed: seed}
}

// NewTimeSeeded creates an RNG seeded from the wall clock.
func NewTimeSeeded() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Chance reports true with probability p, drawing u in [0, 1) and testing
// p > u. p <= 0 never fires and p >= 1 always does.
func (r *RNG) Chance(p float64) bool {
	return p > r.r.Float64()
}
