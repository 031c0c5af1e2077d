package session

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrDimMismatch indicates dataset and training configs disagree on Dim.
	ErrDimMismatch = errors.New("session: dataset and training dimensionality differ")
	// ErrAlreadyRunning indicates Loop.Start on a running loop.
	ErrAlreadyRunning = errors.New("session: loop already running")
)

// MetricsRecord is the telemetry of one applied training step.
type MetricsRecord struct {
	// Iteration is the counter after the step.
	Iteration int
	// Error is the quantization error of the updated lattice.
	Error float64
	// LearningRate and NeighborhoodSize are the values the step applied.
	LearningRate     float64
	NeighborhoodSize float64
}

// MetricsLog is the cumulative, ordered record sequence of one run.
type MetricsLog []MetricsRecord

// Errors returns the Error column.
func (m MetricsLog) Errors() []float64 {
	out := make([]float64, len(m))
	for i, r := range m {
		out[i] = r.Error
	}

	return out
}

// Last returns the most recent record.
func (m MetricsLog) Last() (MetricsRecord, bool) {
	if len(m) == 0 {
		return MetricsRecord{}, false
	}

	return m[len(m)-1], true
}

// MovingAverage returns the mean Error over the window records ending at
// index end (inclusive). The window is clipped to the log; an empty log or
// non-positive window yields 0.
// Complexity: O(window).
func (m MetricsLog) MovingAverage(end, window int) float64 {
	if len(m) == 0 || window <= 0 {
		return 0
	}
	end = min(max(end, 0), len(m)-1)
	start := max(end-window+1, 0)

	return stat.Mean(m[start:end+1].Errors(), nil)
}
