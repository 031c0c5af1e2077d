package session

import (
	"time"

	"github.com/katalvlaran/kohonen/sampler"
)

// Substream ids derived from the session sampler.
const (
	genStream  uint64 = 1
	pickStream uint64 = 2
)

// Option customizes a Session at construction.
type Option func(*Session)

// WithSeed makes generation and sample selection deterministic. Both draw
// from their own substream of the seeded sampler.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = sampler.New(seed)
	}
}

// WithSampler derives the session's streams from r. Panics on nil.
func WithSampler(r *sampler.Sampler) Option {
	if r == nil {
		panic("session: WithSampler(nil)")
	}

	return func(s *Session) {
		s.rng = r
	}
}

// WithOnStep registers a hook called after every applied step. Panics on nil.
func WithOnStep(fn func(MetricsRecord)) Option {
	if fn == nil {
		panic("session: WithOnStep(nil)")
	}

	return func(s *Session) {
		s.onStep = fn
	}
}

// WithOnReset registers a hook called with the new run ID after every
// regeneration. Panics on nil.
func WithOnReset(fn func(runID string)) Option {
	if fn == nil {
		panic("session: WithOnReset(nil)")
	}

	return func(s *Session) {
		s.onReset = fn
	}
}

// LoopOption customizes a Loop.
type LoopOption func(*Loop)

// Speed bounds.
const (
	MinSpeed     = 0
	MaxSpeed     = 90
	DefaultSpeed = 50
	// periodBase is the period at speed 0, in tick units.
	periodBase = 100
)

// WithSpeed sets the initial speed. Panics outside [MinSpeed, MaxSpeed].
func WithSpeed(speed int) LoopOption {
	if speed < MinSpeed || speed > MaxSpeed {
		panic("session: WithSpeed out of [0,90]")
	}

	return func(l *Loop) {
		l.speed = speed
	}
}

// WithTickUnit sets the duration of one period unit. Panics if d <= 0.
func WithTickUnit(d time.Duration) LoopOption {
	if d <= 0 {
		panic("session: WithTickUnit(d<=0)")
	}

	return func(l *Loop) {
		l.unit = d
	}
}
