package generation

import "fmt"

// Random is the source of randomness threaded through generation.
// *math/rand.Rand satisfies it.
type Random interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
	// Intn returns a uniform value in [0, n)
	Intn(n int) int
}

// randRange returns a uniform value in the closed range [lo, hi]
func randRange(rng Random, lo, hi int) (int, error) {
	if hi < lo {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, lo, hi)
	}
	return lo + rng.Intn(hi-lo+1), nil
}

// chance reports whether an event with probability p fires
func chance(rng Random, p float64) bool {
	return rng.Float64() < p
}
