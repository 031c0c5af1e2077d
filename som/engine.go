package som

import (
	"fmt"

	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/metric"
	"github.com/katalvlaran/kohonen/sampler"
)

// Engine applies online SOM steps for one Config.
// An Engine holds no mutable state and is safe for concurrent use; the
// sampler passed to Step is not.
type Engine struct {
	cfg  Config
	dist metric.Func
}

// NewEngine validates cfg and resolves its coordinate metric.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Topology == nil {
		return nil, fmt.Errorf("NewEngine: %w", ErrNilTopology)
	}
	dist, err := metric.ForDim(cfg.Dim)
	if err != nil {
		return nil, fmt.Errorf("NewEngine: %w: %w", ErrUnsupportedDim, err)
	}

	return &Engine{cfg: cfg, dist: dist}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Step performs one training step at iteration, drawing the sample from s.
// With empty x or w it returns the inputs unchanged and Applied=false.
func (e *Engine) Step(x []core.Sample, w []core.Weight, iteration int, s *sampler.Sampler) StepResult {
	if len(x) == 0 || len(w) == 0 {
		return StepResult{Weights: w, Iteration: iteration, SampleIndex: -1, BMU: -1}
	}

	idx := s.Intn(len(x))
	sample := x[idx].Point
	bmu, _ := FindBMU(sample, w, e.dist)
	lr := e.cfg.LearningRate.At(iteration)
	sigma := e.cfg.Neighborhood.For(iteration, len(w))

	return StepResult{
		Weights:      Update(sample, w, bmu, lr, sigma, e.cfg.Topology, e.cfg.Dim),
		Iteration:    iteration + 1,
		SampleIndex:  idx,
		BMU:          bmu,
		LearningRate: lr,
		Sigma:        sigma,
		Applied:      true,
	}
}

// BMU finds the best-matching unit for sample under the engine's metric.
func (e *Engine) BMU(sample core.Point, w []core.Weight) (int, float64) {
	return FindBMU(sample, w, e.dist)
}
