// SPDX-License-Identifier: MIT
// Package: kohonen/dataset
//
// options.go — functional options for Generate.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generation itself never panics.
//   • Determinism is explicit: WithSeed or WithSampler.

package dataset

import "github.com/katalvlaran/kohonen/sampler"

// Option customizes generation by mutating a genConfig before any draw.
type Option func(*genConfig)

// WithSeed uses a deterministic sampler seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.sampler = sampler.New(seed)
	}
}

// WithSampler shares an existing stream. Panics on nil.
func WithSampler(s *sampler.Sampler) Option {
	if s == nil {
		panic("dataset: WithSampler(nil)")
	}

	return func(c *genConfig) {
		c.sampler = s
	}
}

// WithWeightSpread overrides the N(0,σ) scale of unstructured 1D/2D weights.
// Panics if sigma <= 0.
func WithWeightSpread(sigma float64) Option {
	if sigma <= 0 {
		panic("dataset: WithWeightSpread(sigma<=0)")
	}

	return func(c *genConfig) {
		c.weightSpread = sigma
	}
}

// WithGridJitter overrides the jitter of grid-initialised weights.
// Panics if sigma < 0; 0 places units exactly on the grid.
func WithGridJitter(sigma float64) Option {
	if sigma < 0 {
		panic("dataset: WithGridJitter(sigma<0)")
	}

	return func(c *genConfig) {
		c.gridJitter = sigma
	}
}
