package shared

import (
	"math/rand"
	"time"
)

// Rand is an abstraction over the random source used by discovery and
// valuation rolls. Injecting it keeps every probability-governed code path
// reproducible under a seeded source.
type Rand interface {
	// Float64 returns a uniform value in [0.0, 1.0)
	Float64() float64
	// Intn returns a uniform value in [0, n)
	Intn(n int) int
}

// seededRand wraps math/rand with an explicit, non-global source
type seededRand struct {
	r *rand.Rand
}

// NewSeededRand creates a reproducible random source from a seed
func NewSeededRand(seed int64) Rand {
	return &seededRand{r: rand.New(rand.NewSource(seed))}
}

// NewRand creates a time-seeded random source for normal operation
func NewRand() Rand {
	return NewSeededRand(time.Now().UnixNano())
}

func (s *seededRand) Float64() float64 { return s.r.Float64() }
func (s *seededRand) Intn(n int) int   { return s.r.Intn(n) }

// IntBetween returns a uniform value in [min, max] using the given source.
// Returns min when the range is degenerate.
func IntBetween(rng Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// FloatBetween returns a uniform value in [min, max) using the given source
func FloatBetween(rng Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}
