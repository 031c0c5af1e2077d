// SPDX-License-Identifier: MIT
// Package core_test verifies the data model contracts: dimensionality
// helpers, weight constructors and deep-copy behavior (no slice aliasing).

package core_test

import (
	"testing"

	"github.com/katalvlaran/kohonen/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDim_ValidAndString(t *testing.T) {
	cases := []struct {
		dim   core.Dim
		valid bool
		str   string
	}{
		{core.Dim1, true, "1D"},
		{core.Dim2, true, "2D"},
		{core.Dim3, true, "3D"},
		{core.Dim(0), false, "Dim(0)"},
		{core.Dim(4), false, "Dim(4)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, tc.dim.Valid(), "Valid(%d)", int(tc.dim))
		assert.Equal(t, tc.str, tc.dim.String())
	}
}

func TestPoint_Vec(t *testing.T) {
	p := core.Point{X: 1, Y: 2, Z: 3}
	assert.Equal(t, []float64{1}, p.Vec(core.Dim1))
	assert.Equal(t, []float64{1, 2}, p.Vec(core.Dim2))
	assert.Equal(t, []float64{1, 2, 3}, p.Vec(core.Dim3))
}

func TestWeight_Constructors(t *testing.T) {
	w := core.NewWeight(core.Point{X: 1})
	assert.Equal(t, core.WeightType, w.Type)
	assert.False(t, w.HasGrid)

	g := core.NewGridWeight(core.Point{X: 1, Y: 2}, 3, 4)
	assert.Equal(t, core.WeightType, g.Type)
	assert.True(t, g.HasGrid)
	assert.Equal(t, 3, g.GridX)
	assert.Equal(t, 4, g.GridY)
}

// TestDataset_CloneIsDeep asserts that mutating a clone never leaks back
// into the source dataset.
func TestDataset_CloneIsDeep(t *testing.T) {
	src := core.Dataset{
		Dim:    core.Dim2,
		X:      []core.Sample{{Point: core.Point{X: 1, Y: 1}, Label: 0}},
		Labels: []int{0},
		W:      []core.Weight{core.NewWeight(core.Point{X: 2, Y: 2})},
	}

	c := src.Clone()
	require.Equal(t, src, c)

	c.W[0].X = 99
	c.X[0].Y = 99
	c.Labels[0] = 7

	assert.Equal(t, 2.0, src.W[0].X, "weights must not alias")
	assert.Equal(t, 1.0, src.X[0].Y, "samples must not alias")
	assert.Equal(t, 0, src.Labels[0], "labels must not alias")
}

func TestDataset_Empty(t *testing.T) {
	w := []core.Weight{core.NewWeight(core.Point{})}
	x := []core.Sample{{}}

	assert.True(t, core.Dataset{}.Empty())
	assert.True(t, core.Dataset{X: x}.Empty())
	assert.True(t, core.Dataset{W: w}.Empty())
	assert.False(t, core.Dataset{X: x, W: w}.Empty())
	assert.Nil(t, core.Dataset{}.Clone().W, "nil slices stay nil")
}
