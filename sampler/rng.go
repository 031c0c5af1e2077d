package sampler

import (
	"math"
	"math/rand"
	"time"
)

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// Sampler is a random stream with normal-variate support.
type Sampler struct {
	r *rand.Rand
}

// New returns a deterministic Sampler.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func New(seed int64) *Sampler {
	if seed == 0 {
		seed = DefaultSeed
	}

	return &Sampler{r: rand.New(rand.NewSource(seed))}
}

// NewRandom returns a clock-seeded Sampler.
func NewRandom() *Sampler {
	return &Sampler{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Float64 returns a uniform variate in [0,1).
func (s *Sampler) Float64() float64 {
	return s.r.Float64()
}

// Intn returns a uniform index in [0,n). n must be > 0.
func (s *Sampler) Intn(n int) int {
	return s.r.Intn(n)
}

// Normal draws from N(mean, std²) via Box-Muller. See Normal.
func (s *Sampler) Normal(mean, std float64) float64 {
	return Normal(s.r, mean, std)
}

// Derive creates an independent deterministic substream. The parent is
// advanced once so repeated derivations with the same stream id differ.
// Complexity: O(1).
func (s *Sampler) Derive(stream uint64) *Sampler {
	return &Sampler{r: rand.New(rand.NewSource(deriveSeed(s.r.Int63(), stream)))}
}

// Normal returns mean + std·sqrt(-2 ln u)·cos(2πv) for u, v uniform in
// (0,1). Exact zeros are redrawn so log(0) never occurs.
// Complexity: O(1) expected.
func Normal(r *rand.Rand, mean, std float64) float64 {
	var u, v float64
	for u == 0 {
		u = r.Float64()
	}
	for v == 0 {
		v = r.Float64()
	}

	return mean + std*math.Sqrt(-2.0*math.Log(u))*math.Cos(2.0*math.Pi*v)
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// using the SplitMix64 finalizer constants.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
