package lattice_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/lattice"
	"github.com/katalvlaran/kohonen/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinear_Distance(t *testing.T) {
	var topo lattice.Linear
	assert.Equal(t, 0.0, topo.Distance(3, 3, nil))
	assert.Equal(t, 4.0, topo.Distance(1, 5, nil))
	assert.Equal(t, 4.0, topo.Distance(5, 1, nil))
	assert.Equal(t, lattice.KindLinear, topo.Kind())
}

func TestGrid2D_RowMajorFallback(t *testing.T) {
	// 9 unaddressed weights → 3×3 row-major grid.
	w := make([]core.Weight, 9)
	var topo lattice.Grid2D

	assert.Equal(t, 1.0, topo.Distance(0, 1, w), "(0,0)-(0,1)")
	assert.Equal(t, 1.0, topo.Distance(0, 3, w), "(0,0)-(1,0)")
	assert.InDelta(t, math.Sqrt2, topo.Distance(0, 4, w), 1e-12, "(0,0)-(1,1)")
	assert.InDelta(t, math.Sqrt(8), topo.Distance(0, 8, w), 1e-12, "(0,0)-(2,2)")
}

func TestGrid2D_UsesStoredAddress(t *testing.T) {
	w := []core.Weight{
		core.NewGridWeight(core.Point{}, 0, 0),
		core.NewGridWeight(core.Point{}, 3, 4),
	}
	assert.Equal(t, 5.0, lattice.Grid2D{}.Distance(0, 1, w))
}

func TestUnstructured_UsesWeightPositions(t *testing.T) {
	w := []core.Weight{
		core.NewWeight(core.Point{X: 0, Y: 0}),
		core.NewWeight(core.Point{X: 3, Y: 4}),
	}
	topo := lattice.Unstructured{Metric: metric.Euclidean2D}
	assert.Equal(t, 5.0, topo.Distance(0, 1, w))
	assert.True(t, math.IsInf(topo.Distance(0, 7, w), 1), "out of range → +Inf")
}

func TestForKind(t *testing.T) {
	for _, k := range []lattice.Kind{lattice.KindLinear, lattice.KindGrid2D, lattice.KindUnstructured} {
		topo, err := lattice.ForKind(k, core.Dim2)
		require.NoError(t, err)
		assert.Equal(t, k, topo.Kind())
	}

	_, err := lattice.ForKind(lattice.Kind(42), core.Dim2)
	assert.ErrorIs(t, err, lattice.ErrUnknownKind)

	_, err = lattice.ForKind(lattice.KindUnstructured, core.Dim(9))
	assert.ErrorIs(t, err, metric.ErrUnsupportedDim)
}

func TestSideFor(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 2: 2, 4: 2, 5: 3, 9: 3, 10: 4, 36: 6, 37: 7, 100: 10}
	for n, side := range cases {
		assert.Equal(t, side, lattice.SideFor(n), "SideFor(%d)", n)
	}
}

func TestCoordIndexRoundTrip(t *testing.T) {
	const side = 6
	for idx := 0; idx < side*side; idx++ {
		r, c := lattice.Coord(idx, side)
		assert.Equal(t, idx, lattice.Index(r, c, side))
	}
	r, c := lattice.Coord(5, 0)
	assert.Equal(t, 0, r)
	assert.Equal(t, 5, c)
}
