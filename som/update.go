package som

import (
	"math"

	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/lattice"
)

// Kernel is the Gaussian neighborhood function exp(−d²/(2σ²)). σ below
// MinSigma is raised to MinSigma.
func Kernel(d, sigma float64) float64 {
	if sigma < MinSigma {
		sigma = MinSigma
	}

	return math.Exp(-(d * d) / (2 * sigma * sigma))
}

// Update pulls every unit toward sample by lr·h_i, where h_i is the kernel
// of the topological distance between unit i and bmu. Axes beyond dim are
// copied unchanged. A new slice is returned; w is not modified.
// Complexity: O(|w|·dim).
func Update(sample core.Point, w []core.Weight, bmu int, lr, sigma float64, topo lattice.Topology, dim core.Dim) []core.Weight {
	out := make([]core.Weight, len(w))
	for i, unit := range w {
		h := Kernel(topo.Distance(i, bmu, w), sigma)
		k := lr * h
		unit.X += k * (sample.X - unit.X)
		if dim >= core.Dim2 {
			unit.Y += k * (sample.Y - unit.Y)
		}
		if dim >= core.Dim3 {
			unit.Z += k * (sample.Z - unit.Z)
		}
		out[i] = unit
	}

	return out
}
