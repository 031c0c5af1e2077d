package dataset

import (
	"fmt"

	"github.com/katalvlaran/kohonen/core"
)

// Generate produces the sample set and the initial weight lattice for cfg.
//
// Steps:
//  1. Validate Dim (the only error: ErrUnsupportedDim).
//  2. Resolve the shape: ShapeCustom with points copies them verbatim;
//     ShapeCustom without points falls back to cfg.Fallback.
//  3. Draw samples for the resolved shape, then draw weights.
//
// Sizes below zero are treated as zero. A positive PerCluster overrides
// DataSize with PerCluster samples per sub-cluster.
// Complexity: O(DataSize + InputSize).
func Generate(cfg Config, opts ...Option) (core.Dataset, error) {
	if !cfg.Dim.Valid() {
		return core.Dataset{}, fmt.Errorf("Generate(%s): %w", cfg.Dim, ErrUnsupportedDim)
	}
	g := newGenConfig(opts...)
	dataSize := max(cfg.DataSize, 0)
	inputSize := max(cfg.InputSize, 0)

	var x []core.Sample
	shape := cfg.Shape
	if shape == ShapeCustom {
		if len(cfg.CustomPoints) > 0 {
			x = core.CloneSamples(cfg.CustomPoints)
		} else {
			shape = resolveFallback(cfg.Fallback)
		}
	}
	if x == nil {
		if cfg.PerCluster > 0 {
			dataSize = cfg.PerCluster * clusterCount(cfg.Dim, shape)
		}
		x = samplesFor(cfg.Dim, shape, dataSize, g)
	}

	return core.Dataset{
		Dim:    cfg.Dim,
		X:      x,
		Labels: labelsOf(x),
		W:      weightsFor(cfg.Dim, inputSize, cfg.GridInit, g),
	}, nil
}

// samplesFor dispatches to the per-dimension generators. Shapes that make
// no sense for a dimensionality use that dimensionality's default.
func samplesFor(dim core.Dim, shape Shape, n int, g genConfig) []core.Sample {
	switch dim {
	case core.Dim1:
		if shape == ShapeFeatures {
			return features1D(n, g.sampler)
		}

		return twoBlobs1D(n, g.sampler)
	case core.Dim3:
		switch shape {
		case ShapeSphere:
			return sphere(n, g.sampler)
		case ShapeCube:
			return cube(n, g.sampler)
		case ShapeSpiral:
			return helix(n, g.sampler)
		default:
			return cloud(n, g.sampler)
		}
	default:
		switch shape {
		case ShapeTriangle:
			return blobs2D(n, triangleBlobs, g.sampler)
		case ShapeSquare:
			return blobs2D(n, squareBlobs, g.sampler)
		case ShapeCircle:
			return rings(n, g.sampler)
		case ShapeSpiral:
			return spirals(n, g.sampler)
		default:
			return blobs2D(n, lineBlobs, g.sampler)
		}
	}
}

// clusterCount is the number of sub-clusters samplesFor splits a shape
// into. Shapes without sub-clusters count as one.
func clusterCount(dim core.Dim, shape Shape) int {
	switch dim {
	case core.Dim1:
		if shape == ShapeFeatures {
			return len(featureBlobs)
		}

		return 2
	case core.Dim3:
		return 1
	default:
		switch shape {
		case ShapeTriangle:
			return len(triangleBlobs)
		case ShapeSquare:
			return len(squareBlobs)
		default:
			return 2
		}
	}
}

// weightsFor picks the initialisation policy for dim.
func weightsFor(dim core.Dim, n int, gridInit bool, g genConfig) []core.Weight {
	switch dim {
	case core.Dim1:
		return scatteredWeights1D(n, g.spreadOr(weightSpread1D), g.sampler)
	case core.Dim3:
		return gridWeights3D(n, g.gridJitter, g.sampler)
	default:
		if gridInit {
			return gridWeights2D(n, g.gridJitter, g.sampler)
		}

		return scatteredWeights2D(n, g.spreadOr(weightSpread2D), g.sampler)
	}
}

// split divides total into k near-equal parts; the first total%k parts get
// one extra element so the parts sum to total.
func split(total, k int) []int {
	parts := make([]int, k)
	if k == 0 {
		return parts
	}
	base, rem := total/k, total%k
	for i := range parts {
		parts[i] = base
		if i < rem {
			parts[i]++
		}
	}

	return parts
}

// labelsOf extracts the label column of x.
func labelsOf(x []core.Sample) []int {
	labels := make([]int, len(x))
	for i, s := range x {
		labels[i] = s.Label
	}

	return labels
}
