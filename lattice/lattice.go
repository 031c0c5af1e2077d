package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/metric"
)

// Linear is the chain topology: distance |i − j|.
type Linear struct{}

// Kind returns KindLinear.
func (Linear) Kind() Kind { return KindLinear }

// Distance returns |i − j|.
// Complexity: O(1).
func (Linear) Distance(i, j int, _ []core.Weight) float64 {
	d := i - j
	if d < 0 {
		d = -d
	}

	return float64(d)
}

// Grid2D is the rectangular grid topology.
type Grid2D struct{}

// Kind returns KindGrid2D.
func (Grid2D) Kind() Kind { return KindGrid2D }

// Distance returns sqrt((row_i−row_j)² + (col_i−col_j)²).
// Complexity: O(1).
func (Grid2D) Distance(i, j int, w []core.Weight) float64 {
	ri, ci := address(i, w)
	rj, cj := address(j, w)
	dr, dc := float64(ri-rj), float64(ci-cj)

	return math.Sqrt(dr*dr + dc*dc)
}

// address prefers the stored grid address and falls back to row-major
// layout over SideFor(len(w)).
func address(i int, w []core.Weight) (row, col int) {
	if i >= 0 && i < len(w) && w[i].HasGrid {
		return w[i].GridX, w[i].GridY
	}

	return Coord(i, SideFor(len(w)))
}

// Unstructured measures distance between weight positions in coordinate space.
type Unstructured struct {
	Metric metric.Func
}

// Kind returns KindUnstructured.
func (Unstructured) Kind() Kind { return KindUnstructured }

// Distance returns Metric(w[i], w[j]); indices out of range yield +Inf so
// the kernel contributes nothing.
// Complexity: O(dim).
func (u Unstructured) Distance(i, j int, w []core.Weight) float64 {
	if i < 0 || j < 0 || i >= len(w) || j >= len(w) {
		return math.Inf(1)
	}
	m := u.Metric
	if m == nil {
		m = metric.Euclidean3D
	}

	return m(w[i].Point, w[j].Point)
}

// ForKind builds the topology for kind. dim selects the coordinate metric
// used by Unstructured.
func ForKind(kind Kind, dim core.Dim) (Topology, error) {
	switch kind {
	case KindLinear:
		return Linear{}, nil
	case KindGrid2D:
		return Grid2D{}, nil
	case KindUnstructured:
		m, err := metric.ForDim(dim)
		if err != nil {
			return nil, fmt.Errorf("ForKind(%s): %w", kind, err)
		}

		return Unstructured{Metric: m}, nil
	}

	return nil, fmt.Errorf("ForKind(%d): %w", int(kind), ErrUnknownKind)
}

// SideFor returns ceil(sqrt(n)), the side of the smallest square grid that
// holds n units. SideFor(0) == 0.
// Complexity: O(1).
func SideFor(n int) int {
	if n <= 0 {
		return 0
	}
	s := int(math.Ceil(math.Sqrt(float64(n))))
	// Guard against float rounding on perfect squares.
	for s*s < n {
		s++
	}
	for s > 1 && (s-1)*(s-1) >= n {
		s--
	}

	return s
}

// Coord converts a row-major index to (row, col) for the given side.
// side <= 0 maps everything to (0, idx).
// Complexity: O(1).
func Coord(idx, side int) (row, col int) {
	if side <= 0 {
		return 0, idx
	}

	return idx / side, idx % side
}

// Index converts (row, col) to a row-major index for the given side.
// Complexity: O(1).
func Index(row, col, side int) int {
	return row*side + col
}
