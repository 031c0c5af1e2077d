package lattice

import (
	"errors"

	"github.com/katalvlaran/kohonen/core"
)

// ErrUnknownKind indicates a Kind outside Linear/Grid2D/Unstructured.
var ErrUnknownKind = errors.New("lattice: unknown topology kind")

// Kind enumerates supported topologies.
type Kind int

const (
	// KindLinear is a 1D chain of units.
	KindLinear Kind = iota
	// KindGrid2D is a rectangular grid of units.
	KindGrid2D
	// KindUnstructured has no topology beyond weight positions.
	KindUnstructured
)

// String renders the kind name.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindGrid2D:
		return "grid2d"
	case KindUnstructured:
		return "unstructured"
	}

	return "unknown"
}

// Topology measures the topological distance between units i and j of w.
// Implementations must be pure: no mutation of w.
type Topology interface {
	Kind() Kind
	Distance(i, j int, w []core.Weight) float64
}
