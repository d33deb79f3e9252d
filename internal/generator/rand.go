package generator

import (
	"math/rand/v2"
	"time"
)

// Rand is the random source the generator draws from. *rand.Rand satisfies
// it; tests may substitute scripted sources.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a PCG source for seed. A zero seed is replaced by the
// current time so unseeded runs differ.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func pick[T any](rng Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

func chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}

func between(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
