package metric

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/kohonen/core"
	"gonum.org/v1/gonum/floats"
)

// ErrUnsupportedDim indicates a dimensionality outside {1,2,3}.
var ErrUnsupportedDim = errors.New("metric: unsupported dimensionality")

// Func measures the distance between two points.
type Func func(a, b core.Point) float64

// Linear is the 1D distance |a.X − b.X|.
func Linear(a, b core.Point) float64 {
	return math.Abs(a.X - b.X)
}

// Euclidean2D is the L2 distance over X and Y.
func Euclidean2D(a, b core.Point) float64 {
	return floats.Distance(a.Vec(core.Dim2), b.Vec(core.Dim2), 2)
}

// Euclidean3D is the L2 distance over X, Y and Z.
func Euclidean3D(a, b core.Point) float64 {
	return floats.Distance(a.Vec(core.Dim3), b.Vec(core.Dim3), 2)
}

// SquaredLinear is Linear squared.
func SquaredLinear(a, b core.Point) float64 {
	d := a.X - b.X

	return d * d
}

// SquaredEuclidean2D is Euclidean2D squared, without the root.
func SquaredEuclidean2D(a, b core.Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y

	return dx*dx + dy*dy
}

// SquaredEuclidean3D is Euclidean3D squared, without the root.
func SquaredEuclidean3D(a, b core.Point) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z

	return dx*dx + dy*dy + dz*dz
}

// ForDim returns the distance function for dim.
func ForDim(dim core.Dim) (Func, error) {
	switch dim {
	case core.Dim1:
		return Linear, nil
	case core.Dim2:
		return Euclidean2D, nil
	case core.Dim3:
		return Euclidean3D, nil
	}

	return nil, fmt.Errorf("ForDim(%d): %w", int(dim), ErrUnsupportedDim)
}

// SquaredForDim returns the squared distance function for dim.
func SquaredForDim(dim core.Dim) (Func, error) {
	switch dim {
	case core.Dim1:
		return SquaredLinear, nil
	case core.Dim2:
		return SquaredEuclidean2D, nil
	case core.Dim3:
		return SquaredEuclidean3D, nil
	}

	return nil, fmt.Errorf("SquaredForDim(%d): %w", int(dim), ErrUnsupportedDim)
}
