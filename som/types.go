package som

import (
	"errors"

	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/lattice"
	"github.com/katalvlaran/kohonen/schedule"
)

var (
	// ErrNilTopology indicates a Config without a lattice topology.
	ErrNilTopology = errors.New("som: topology is nil")
	// ErrUnsupportedDim indicates a Config whose Dim is not 1, 2 or 3.
	ErrUnsupportedDim = errors.New("som: unsupported dimensionality")
)

// MinSigma is the smallest σ the kernel will use.
const MinSigma = 1e-9

// Config is the training configuration of one run.
type Config struct {
	Dim          core.Dim
	LearningRate schedule.LearningRate
	Neighborhood schedule.Neighborhood
	Topology     lattice.Topology
}

// DefaultConfig returns per-context defaults for a lattice of weightCount
// units: a decaying learning rate (lr0=0.1, τ=1000) and
//
//	KindLinear, KindUnstructured → LinearNeighborhood (σ0=2, floor 0.5)
//	KindGrid2D                   → GridNeighborhood(weightCount)
//
// Unknown kinds fall back to KindLinear.
func DefaultConfig(dim core.Dim, weightCount int, kind lattice.Kind) Config {
	cfg := Config{
		Dim:          dim,
		LearningRate: schedule.DefaultLearningRate(),
		Neighborhood: schedule.LinearNeighborhood(),
	}
	topo, err := lattice.ForKind(kind, dim)
	if err != nil {
		topo = lattice.Linear{}
	}
	cfg.Topology = topo
	if kind == lattice.KindGrid2D {
		cfg.Neighborhood = schedule.GridNeighborhood(weightCount)
	}

	return cfg
}

// StepResult reports one training step.
type StepResult struct {
	// Weights is the lattice after the step (the input slice when !Applied).
	Weights []core.Weight
	// Iteration is the counter after the step.
	Iteration int
	// SampleIndex is the index in X of the selected sample, −1 when !Applied.
	SampleIndex int
	// BMU is the index in W of the best-matching unit, −1 when !Applied.
	BMU int
	// LearningRate and Sigma are the values applied in this step.
	LearningRate float64
	Sigma        float64
	// Applied is false when X or W was empty and nothing happened.
	Applied bool
}
