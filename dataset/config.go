// SPDX-License-Identifier: MIT
// Package: kohonen/dataset
//
// config.go — public run configuration and internal generation knobs.
//
// Deterministic defaults:
//   • weightSpread = 0        (resolved per dimension: 5 for 1D, 6 for 2D)
//   • gridJitter   = 0.1
//   • sampler      = clock-seeded unless WithSeed/WithSampler is given

package dataset

import (
	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/sampler"
)

// Config is the caller-facing description of a dataset.
type Config struct {
	Dim   core.Dim
	Shape Shape
	// InputSize is the weight count.
	InputSize int
	// DataSize is the total sample count (ignored for ShapeCustom).
	DataSize int
	// PerCluster, when positive, replaces DataSize: every sub-cluster of
	// the shape gets exactly PerCluster samples. Shapes without
	// sub-clusters (3D) get PerCluster samples in total.
	PerCluster int
	// CustomPoints replaces procedural generation when Shape == ShapeCustom.
	CustomPoints []core.Sample
	// Fallback is used when Shape == ShapeCustom and CustomPoints is empty.
	// Empty or custom resolves to ShapeLine.
	Fallback Shape
	// GridInit places 2D weights on a jittered grid with stored addresses.
	GridInit bool
}

// DefaultConfig returns per-dimension defaults:
// 1D 100 samples / 20 weights, 2D 80/36 line, 3D 80/36 sphere.
func DefaultConfig(dim core.Dim) Config {
	switch dim {
	case core.Dim1:
		return Config{Dim: dim, Shape: ShapeDefault, InputSize: DefaultInputSize1D, DataSize: DefaultDataSize1D, Fallback: ShapeLine}
	case core.Dim3:
		return Config{Dim: dim, Shape: ShapeSphere, InputSize: DefaultInputSize, DataSize: DefaultDataSize, Fallback: ShapeLine}
	default:
		return Config{Dim: dim, Shape: ShapeLine, InputSize: DefaultInputSize, DataSize: DefaultDataSize, Fallback: ShapeLine}
	}
}

// genConfig aggregates internal generation knobs.
type genConfig struct {
	sampler      *sampler.Sampler
	weightSpread float64
	gridJitter   float64
}

// newGenConfig applies opts in order (last wins) over the defaults.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{gridJitter: defaultGridJitter}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sampler == nil {
		cfg.sampler = sampler.NewRandom()
	}

	return cfg
}

// spreadOr returns the configured weight spread or def when unset.
func (c genConfig) spreadOr(def float64) float64 {
	if c.weightSpread > 0 {
		return c.weightSpread
	}

	return def
}

// resolveFallback maps an unusable fallback to ShapeLine.
func resolveFallback(s Shape) Shape {
	if s == "" || s == ShapeCustom {
		return ShapeLine
	}

	return s
}
