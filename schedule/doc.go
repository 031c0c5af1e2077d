// Package schedule implements the learning-rate and neighborhood-radius
// schedules of online SOM training.
//
// Both schedules have two modes:
//
//	Variable — exponential decay in the iteration count:
//	           lr(t) = lr0 · exp(−t/τ)
//	           σ(t)  = max(floor, σ0 · exp(−t/τ))
//	Fixed    — an externally supplied scalar, constant in t.
//
// Presets:
//
//	DefaultLearningRate()      lr0=0.1, τ=1000
//	SlowLearningRate()         lr0=0.1, τ=2000
//	PaletteLearningRate()      lr0=0.1, τ=100
//	LinearNeighborhood()       σ0=2.0, τ=1000, floor=0.5   (1D / line lattices)
//	GridNeighborhood(n)        σ0=sqrt(|W|)/2, τ=1000, no floor (grid lattices)
//	PaletteNeighborhood()      σ0=2.0, τ=100, no floor
//
// The grid σ0 follows the lattice: Neighborhood.For(t, |W|) recomputes it
// from the weight count on every call, so resizing the lattice between runs
// needs no new schedule.
//
// Schedules do not validate caller ranges beyond their constructors; a
// non-positive σ is guarded by the training kernel, not here.
package schedule
