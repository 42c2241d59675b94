// Package random provides the injectable randomness used by word generation.
package random

import (
	"math/rand"
	"time"
)

// Rand is the subset of *rand.Rand the generator depends on.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// New returns a Rand seeded with seed, or with the current time when seed is 0.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// IntRange returns a random int in [min, max].
func IntRange(r Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Pick returns a random element of items. items must not be empty.
func Pick[T any](r Rand, items []T) T {
	return items[r.Intn(len(items))]
}
