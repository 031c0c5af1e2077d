package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/dataset"
	"github.com/katalvlaran/kohonen/sampler"
	"github.com/katalvlaran/kohonen/schedule"
	"github.com/katalvlaran/kohonen/som"
)

// Session owns one training run. All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	dataCfg  dataset.Config
	trainCfg som.Config
	engine   *som.Engine
	rng      *sampler.Sampler

	// gen feeds dataset generation and pick feeds sample selection, so the
	// number of steps taken never changes the data the next Reset draws.
	gen, pick *sampler.Sampler

	data      core.Dataset
	iteration int
	err       float64
	metrics   MetricsLog
	runID     uuid.UUID

	onStep  func(MetricsRecord)
	onReset func(string)
}

// New builds a session and generates its first dataset.
// Errors: ErrDimMismatch, som.ErrNilTopology, som.ErrUnsupportedDim,
// dataset.ErrUnsupportedDim.
func New(data dataset.Config, train som.Config, opts ...Option) (*Session, error) {
	if data.Dim != train.Dim {
		return nil, fmt.Errorf("New(%s, %s): %w", data.Dim, train.Dim, ErrDimMismatch)
	}
	engine, err := som.NewEngine(train)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	s := &Session{dataCfg: cloneDataConfig(data), trainCfg: train, engine: engine}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = sampler.NewRandom()
	}
	s.gen, s.pick = s.rng.Derive(genStream), s.rng.Derive(pickStream)

	s.mu.Lock()
	err = s.regenerateLocked()
	runID, hook := s.runID.String(), s.onReset
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if hook != nil {
		hook(runID)
	}

	return s, nil
}

// Step performs one atomic training step and records its metrics.
// It returns false, without advancing the iteration, when X or W is empty.
func (s *Session) Step() (MetricsRecord, bool) {
	s.mu.Lock()
	rec, ok := s.stepLocked()
	hook := s.onStep
	s.mu.Unlock()

	if ok && hook != nil {
		hook(rec)
	}

	return rec, ok
}

// Run executes up to n steps and returns how many were applied. It stops
// early only on an empty dataset.
func (s *Session) Run(n int) int {
	applied := 0
	for i := 0; i < n; i++ {
		if _, ok := s.Step(); !ok {
			break
		}
		applied++
	}

	return applied
}

func (s *Session) stepLocked() (MetricsRecord, bool) {
	res := s.engine.Step(s.data.X, s.data.W, s.iteration, s.pick)
	if !res.Applied {
		return MetricsRecord{}, false
	}
	s.data.W = res.Weights
	s.iteration = res.Iteration
	s.err = som.QuantizationError(s.data.X, s.data.W, s.data.Dim)

	rec := MetricsRecord{
		Iteration:        s.iteration,
		Error:            s.err,
		LearningRate:     res.LearningRate,
		NeighborhoodSize: res.Sigma,
	}
	s.metrics = append(s.metrics, rec)

	return rec, true
}

// Reset discards the run and regenerates data from the current config:
// iteration 0, metrics cleared, new run ID.
func (s *Session) Reset() error {
	s.mu.Lock()
	err := s.regenerateLocked()
	runID, hook := s.runID.String(), s.onReset
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("Reset: %w", err)
	}
	if hook != nil {
		hook(runID)
	}

	return nil
}

func (s *Session) regenerateLocked() error {
	ds, err := dataset.Generate(s.dataCfg, dataset.WithSampler(s.gen))
	if err != nil {
		return err
	}
	s.data = ds
	s.iteration = 0
	s.metrics = nil
	s.err = som.QuantizationError(ds.X, ds.W, ds.Dim)
	s.runID = uuid.New()

	return nil
}

// SetTrainingConfig replaces the training config. It applies from the next
// step; the iteration counter is kept.
func (s *Session) SetTrainingConfig(cfg som.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.installLocked(cfg); err != nil {
		return fmt.Errorf("SetTrainingConfig: %w", err)
	}

	return nil
}

// SetLearningRate swaps the learning-rate schedule from the next step.
func (s *Session) SetLearningRate(lr schedule.LearningRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.trainCfg
	cfg.LearningRate = lr
	if err := s.installLocked(cfg); err != nil {
		return fmt.Errorf("SetLearningRate: %w", err)
	}

	return nil
}

// SetNeighborhood swaps the neighborhood schedule from the next step.
func (s *Session) SetNeighborhood(n schedule.Neighborhood) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.trainCfg
	cfg.Neighborhood = n
	if err := s.installLocked(cfg); err != nil {
		return fmt.Errorf("SetNeighborhood: %w", err)
	}

	return nil
}

// installLocked validates cfg against the dataset config and swaps the
// engine. The caller holds s.mu.
func (s *Session) installLocked(cfg som.Config) error {
	if cfg.Dim != s.dataCfg.Dim {
		return fmt.Errorf("dim %s: %w", cfg.Dim, ErrDimMismatch)
	}
	engine, err := som.NewEngine(cfg)
	if err != nil {
		return err
	}
	s.trainCfg, s.engine = cfg, engine

	return nil
}

// SetDataConfig stores a new dataset config; it takes effect on Reset.
func (s *Session) SetDataConfig(cfg dataset.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.Dim != s.trainCfg.Dim {
		return fmt.Errorf("SetDataConfig(%s): %w", cfg.Dim, ErrDimMismatch)
	}
	s.dataCfg = cloneDataConfig(cfg)

	return nil
}

// SetCustomPoints switches the dataset to ShapeCustom with a copy of
// points; it takes effect on Reset. An empty list makes the next Reset use
// the configured fallback shape.
func (s *Session) SetCustomPoints(points []core.Sample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataCfg.Shape = dataset.ShapeCustom
	s.dataCfg.CustomPoints = core.CloneSamples(points)
}

// Snapshot returns a deep copy of the current dataset.
func (s *Session) Snapshot() core.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.Clone()
}

// Weights returns a copy of the current lattice.
func (s *Session) Weights() []core.Weight {
	s.mu.Lock()
	defer s.mu.Unlock()

	return core.CloneWeights(s.data.W)
}

// Metrics returns a copy of the run's metrics log.
func (s *Session) Metrics() MetricsLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.metrics == nil {
		return nil
	}
	out := make(MetricsLog, len(s.metrics))
	copy(out, s.metrics)

	return out
}

// Error returns the quantization error of the current lattice.
func (s *Session) Error() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Iteration returns the step counter of the current run.
func (s *Session) Iteration() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.iteration
}

// CurrentLearningRate is the rate the next step will apply.
func (s *Session) CurrentLearningRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.trainCfg.LearningRate.At(s.iteration)
}

// CurrentNeighborhoodSize is the σ the next step will apply to the
// current lattice.
func (s *Session) CurrentNeighborhoodSize() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.trainCfg.Neighborhood.For(s.iteration, len(s.data.W))
}

// RunID identifies the current run; it changes on every regeneration.
func (s *Session) RunID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.runID.String()
}

// DataConfig returns a copy of the dataset config.
func (s *Session) DataConfig() dataset.Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneDataConfig(s.dataCfg)
}

// TrainingConfig returns the training config.
func (s *Session) TrainingConfig() som.Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.trainCfg
}

func cloneDataConfig(c dataset.Config) dataset.Config {
	c.CustomPoints = core.CloneSamples(c.CustomPoints)

	return c
}
