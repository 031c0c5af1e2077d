package som_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/lattice"
	"github.com/katalvlaran/kohonen/som"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernel(t *testing.T) {
	assert.Equal(t, 1.0, som.Kernel(0, 1))
	assert.InDelta(t, math.Exp(-0.5), som.Kernel(1, 1), 1e-15)
	assert.InDelta(t, math.Exp(-2), som.Kernel(2, 1), 1e-15)
	assert.Greater(t, som.Kernel(1, 2), som.Kernel(1, 1), "wider σ reaches further")
}

// TestKernel_NonPositiveSigma checks that σ ≤ 0 never yields NaN and
// degenerates to winner-take-all.
func TestKernel_NonPositiveSigma(t *testing.T) {
	for _, sigma := range []float64{0, -1} {
		assert.Equal(t, 1.0, som.Kernel(0, sigma))
		h := som.Kernel(1, sigma)
		assert.False(t, math.IsNaN(h))
		assert.Equal(t, 0.0, h)
	}
}

func TestUpdate_MovesTowardSample(t *testing.T) {
	w := weights(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 10}, core.Point{X: -10, Y: 4})
	orig := core.CloneWeights(w)
	sample := core.Point{X: 2, Y: 2}

	out := som.Update(sample, w, 0, 0.5, 1, lattice.Linear{}, core.Dim2)
	require.Len(t, out, len(w))
	assert.Equal(t, orig, w, "input lattice must not be mutated")

	assert.Equal(t, core.Point{X: 1, Y: 1}, out[0].Point, "BMU moves lr·1 of the way")

	h1 := math.Exp(-0.5)
	assert.InDelta(t, 10+0.5*h1*(2-10), out[1].X, 1e-12)
	h2 := math.Exp(-2)
	assert.InDelta(t, 4+0.5*h2*(2-4), out[2].Y, 1e-12)
}

func TestUpdate_RespectsDimensionality(t *testing.T) {
	w := []core.Weight{core.NewWeight(core.Point{X: 0, Y: 0.5, Z: 9})}
	out := som.Update(core.Point{X: 4, Y: 0, Z: 0}, w, 0, 1, 1, lattice.Linear{}, core.Dim1)
	assert.Equal(t, 4.0, out[0].X)
	assert.Equal(t, 0.5, out[0].Y, "1D keeps the display offset")
	assert.Equal(t, 9.0, out[0].Z)

	out = som.Update(core.Point{X: 4, Y: 0, Z: 0}, w, 0, 1, 1, lattice.Linear{}, core.Dim3)
	assert.Equal(t, core.Point{X: 4, Y: 0, Z: 0}, out[0].Point)
}

func TestUpdate_GridTopology(t *testing.T) {
	// 3×3 row-major grid, BMU in the center: edge neighbors at distance 1,
	// corners at sqrt(2).
	w := make([]core.Weight, 9)
	for i := range w {
		w[i] = core.NewWeight(core.Point{})
	}
	out := som.Update(core.Point{X: 1}, w, 4, 1, 1, lattice.Grid2D{}, core.Dim2)
	assert.Equal(t, 1.0, out[4].X)
	assert.InDelta(t, math.Exp(-0.5), out[1].X, 1e-12)
	assert.InDelta(t, math.Exp(-1), out[0].X, 1e-12)
	assert.Equal(t, out[0].X, out[8].X)
}

func TestUpdate_PreservesGridAddress(t *testing.T) {
	w := []core.Weight{core.NewGridWeight(core.Point{}, 2, 3)}
	out := som.Update(core.Point{X: 1, Y: 1}, w, 0, 0.1, 1, lattice.Grid2D{}, core.Dim2)
	assert.True(t, out[0].HasGrid)
	assert.Equal(t, 2, out[0].GridX)
	assert.Equal(t, 3, out[0].GridY)
	assert.Equal(t, core.WeightType, out[0].Type)
}
