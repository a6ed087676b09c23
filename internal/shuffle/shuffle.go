// Package shuffle provides uniform random permutations of slices.
package shuffle

import (
	"math/rand/v2"
	"slices"
)

// Shuffle returns a new slice holding a uniformly random permutation of in.
// The input slice is never modified. Empty and single-element inputs come
// back as an unchanged copy.
//
// The permutation is a Fisher-Yates pass from the last index down to 1,
// swapping each element with one drawn uniformly from [0, i].
func Shuffle[T any](rng *rand.Rand, in []T) []T {
	out := slices.Clone(in)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns n elements drawn uniformly without replacement from in,
// in random order. If n exceeds len(in), all elements are returned shuffled.
func Sample[T any](rng *rand.Rand, in []T, n int) []T {
	if n <= 0 {
		return nil
	}
	shuffled := Shuffle(rng, in)
	if n >= len(shuffled) {
		return shuffled
	}
	return shuffled[:n]
}

// NewRand returns a time-seeded generator for production use.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
