// Package dataset generates the fixed sample set X and the initial weight
// lattice W for one SOM training run.
//
// What it builds:
//
//	1D   — two Gaussian blobs on the X axis at −5 and +5 (σ=1, y=0), or
//	       ShapeFeatures: three clusters at x = −5, 5, −1 with a display Y.
//	       Weights: x ~ N(0,5), y = 0.5 (display offset, never trained).
//	2D   — line | triangle | square | circle | spiral | custom | default.
//	       Weights: each coordinate ~ N(0,6), or a jittered regular grid
//	       with stored grid addresses when Config.GridInit is set.
//	3D   — sphere | cube | spiral | default (isotropic N(0,5) cloud).
//	       Weights: regular grid over [−5,5]² with small jitter, count
//	       ceil(sqrt(n))² truncated to n, grid addresses stored.
//
// Sizes:
//
//	DataSize samples are split across the k sub-clusters of a shape; the
//	first DataSize mod k clusters get one extra sample, so len(X) equals
//	DataSize exactly. InputSize weights are produced, len(W) == InputSize.
//	Zero or negative sizes yield empty slices, never an error.
//	Config.PerCluster > 0 fixes the count per sub-cluster instead.
//
// Palettes:
//
//	PaletteWeights draws random RGB units for colour quantization.
//
// Custom shapes:
//
//	ShapeCustom copies Config.CustomPoints verbatim (coordinates + label).
//	An empty list falls back to Config.Fallback (ShapeLine by default).
//
// Randomness:
//
//	All draws flow through a *sampler.Sampler. Without WithSeed/WithSampler
//	a clock-seeded stream is used.
//
// Usage:
//
//	cfg := dataset.DefaultConfig(core.Dim2)
//	cfg.Shape = dataset.ShapeSquare
//	ds, err := dataset.Generate(cfg, dataset.WithSeed(7))
package dataset
