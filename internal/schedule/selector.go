package schedule

import (
	"math/rand/v2"
	"time"
)

// Source yields a uniform integer in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSource returns a source seeded from the clock.
func RandomSource() *rand.Rand {
	return NewSource(uint64(time.Now().UnixNano()))
}

// Pick returns one candidate chosen uniformly by src.
func Pick[T any](src Source, candidates []T) (T, error) {
	var zero T
	i, err := PickIndex(src, len(candidates))
	if err != nil {
		return zero, err
	}
	return candidates[i], nil
}

// PickIndex returns an index in [0, n) chosen uniformly by src.
func PickIndex(src Source, n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyCandidateSet
	}
	return src.IntN(n), nil
}
