package ltc

import (
	"math/rand"
)

// Sampler provides the random numbers consumed by sampling and
// estimation. Can be swapped for a deterministic sequence in tests.
type Sampler interface {
	Get2D() (float64, float64)
}

// RandomSampler wraps a math/rand generator. Not safe for concurrent use;
// give each worker its own.
type RandomSampler struct {
	random *rand.Rand
}

func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler is a RandomSampler over a fresh source.
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get2D returns two values in [0, 1).
func (r *RandomSampler) Get2D() (float64, float64) {
	return r.random.Float64(), r.random.Float64()
}
