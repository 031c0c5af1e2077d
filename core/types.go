// SPDX-License-Identifier: MIT
package core

import "fmt"

// Dim is the dimensionality of the coordinate space (1, 2 or 3).
type Dim int

const (
	// Dim1 uses X only; Y carries a constant display offset.
	Dim1 Dim = 1
	// Dim2 uses X and Y.
	Dim2 Dim = 2
	// Dim3 uses X, Y and Z.
	Dim3 Dim = 3
)

// Valid reports whether d is one of Dim1, Dim2, Dim3.
func (d Dim) Valid() bool {
	return d >= Dim1 && d <= Dim3
}

// String renders d as "1D", "2D" or "3D".
func (d Dim) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Dim(%d)", int(d))
	}

	return fmt.Sprintf("%dD", int(d))
}

// WeightType is the constant type tag carried by every Weight.
const WeightType = "weight"

// Point is a position in coordinate space. Unused axes are ignored by
// metrics and updates of lower dimensionality.
type Point struct {
	X, Y, Z float64
}

// Vec returns the first dim coordinates of p as a new slice.
// An invalid dim yields all three coordinates.
// Complexity: O(1).
func (p Point) Vec(dim Dim) []float64 {
	switch dim {
	case Dim1:
		return []float64{p.X}
	case Dim2:
		return []float64{p.X, p.Y}
	default:
		return []float64{p.X, p.Y, p.Z}
	}
}

// Sample is one element of the fixed input set X.
type Sample struct {
	Point
	// Label identifies the generative sub-cluster; advisory only.
	Label int
}

// Weight is one lattice unit. Point is the trained value.
type Weight struct {
	Point
	// Type is always WeightType.
	Type string
	// GridX, GridY form the topological address; valid only when HasGrid.
	GridX, GridY int
	HasGrid      bool
}

// NewWeight returns an unaddressed Weight at p.
func NewWeight(p Point) Weight {
	return Weight{Point: p, Type: WeightType}
}

// NewGridWeight returns a Weight at p with grid address (gx, gy).
func NewGridWeight(p Point, gx, gy int) Weight {
	return Weight{Point: p, Type: WeightType, GridX: gx, GridY: gy, HasGrid: true}
}

// Dataset couples the sample set X (with its label column) and the weight
// lattice W of one training run.
type Dataset struct {
	Dim    Dim
	X      []Sample
	Labels []int
	W      []Weight
}
