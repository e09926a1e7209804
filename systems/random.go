package systems

import "math/rand"

// RandSource supplies uniformly distributed integers for auxin placement.
type RandSource interface {
	// Intn returns a uniform integer in [lo, hi). Callers guarantee hi > lo.
	Intn(lo, hi int) int
}

// SeededSource is a RandSource backed by a seeded math/rand generator.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a deterministic source for the given seed.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

// Intn implements RandSource.
func (s *SeededSource) Intn(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo)
}
