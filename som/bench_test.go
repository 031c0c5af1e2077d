package som_test

import (
	"testing"

	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/dataset"
	"github.com/katalvlaran/kohonen/lattice"
	"github.com/katalvlaran/kohonen/sampler"
	"github.com/katalvlaran/kohonen/som"
)

// benchmarkStep runs Engine.Step on a generated dataset of the given sizes.
func benchmarkStep(b *testing.B, dataSize, inputSize int) {
	cfg := dataset.Config{Dim: core.Dim2, Shape: dataset.ShapeSquare, DataSize: dataSize, InputSize: inputSize}
	ds, err := dataset.Generate(cfg, dataset.WithSeed(1))
	if err != nil {
		b.Fatalf("Generate failed: %v", err)
	}
	e, err := som.NewEngine(som.DefaultConfig(core.Dim2, inputSize, lattice.KindGrid2D))
	if err != nil {
		b.Fatalf("NewEngine failed: %v", err)
	}
	s := sampler.New(2)

	b.ResetTimer()
	w, it := ds.W, 0
	for i := 0; i < b.N; i++ {
		res := e.Step(ds.X, w, it, s)
		w, it = res.Weights, res.Iteration
	}
}

func BenchmarkStep_Small(b *testing.B)  { benchmarkStep(b, 80, 36) }
func BenchmarkStep_Medium(b *testing.B) { benchmarkStep(b, 200, 196) }

// BenchmarkQuantizationError_200x200 measures the per-step telemetry cost at
// the upper end of the target size.
func BenchmarkQuantizationError_200x200(b *testing.B) {
	cfg := dataset.Config{Dim: core.Dim2, Shape: dataset.ShapeCircle, DataSize: 200, InputSize: 200}
	ds, err := dataset.Generate(cfg, dataset.WithSeed(1))
	if err != nil {
		b.Fatalf("Generate failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = som.QuantizationError(ds.X, ds.W, core.Dim2)
	}
}
