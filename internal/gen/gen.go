// Package gen produces random inputs for the solver.
package gen

import (
	"pgregory.net/rand"
)

// NewRand returns a generator seeded with seed, or a randomly seeded one
// when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New()
	}
	return rand.New(seed)
}

// Permutation returns 0..n-1 in random order.
func Permutation(r *rand.Rand, n int) []int {
	return r.Perm(n)
}

// Spaced returns n distinct values spacing apart and centred on zero, in
// random order. A spacing below 1 is treated as 1.
func Spaced(r *rand.Rand, n, spacing int) []int {
	if spacing < 1 {
		spacing = 1
	}
	values := make([]int, n)
	for i := range values {
		values[i] = (i - n/2) * spacing
	}
	r.Shuffle(n, func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return values
}
