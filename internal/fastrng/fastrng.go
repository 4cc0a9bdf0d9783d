// Package fastrng provides the xorshift64 generator used throughout the
// solver packages for deck shuffling, Monte Carlo rollouts, and MCTS
// playouts. It trades the statistical guarantees of a crypto or PCG source
// for raw throughput in hot loops that run billions of times per training
// run.
package fastrng

import "github.com/lox/pokersolver/internal/randutil"

// RNG is a xorshift64 pseudo-random generator. The zero value is not
// usable; construct one with New.
type RNG struct {
	state uint64
}

// New returns a generator seeded from seed. A zero seed draws a fresh seed
// from the OS entropy source instead, since xorshift64 cannot recover from
// an all-zero state and reproducibility was not requested. Callers that
// need bit-reproducible sequences must pass an explicit non-zero seed.
func New(seed uint64) *RNG {
	if seed == 0 {
		seed = randutil.HardwareSeed()
	}
	return &RNG{state: seed}
}

// Seed reseeds the generator in place, avoiding an allocation. As with New,
// a zero seed draws from the OS entropy source.
func (r *RNG) Seed(seed uint64) {
	if seed == 0 {
		seed = randutil.HardwareSeed()
	}
	r.state = seed
}

// Uint64 returns the next pseudo-random value in the sequence.
func (r *RNG) Uint64() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Intn returns a pseudo-random integer in [0, n). It panics if n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("fastrng: Intn called with n <= 0")
	}
	return int(r.Uint64() % uint64(n))
}

// Float64 returns a pseudo-random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Shuffle performs an in-place Fisher-Yates shuffle of n elements using swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}
