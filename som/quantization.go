package som

import (
	"math"

	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/metric"
)

// QuantizationError returns the RMS distance from each sample to its
// nearest weight: sqrt(Σ_x min_w ‖x−w‖² / |X|). It is 0 when x or w is
// empty, or when dim is unsupported.
// Complexity: O(|x|·|w|).
func QuantizationError(x []core.Sample, w []core.Weight, dim core.Dim) float64 {
	if len(x) == 0 || len(w) == 0 {
		return 0
	}
	sq, err := metric.SquaredForDim(dim)
	if err != nil {
		return 0
	}

	var total float64
	for _, s := range x {
		_, d := FindBMU(s.Point, w, sq)
		total += d
	}

	return math.Sqrt(total / float64(len(x)))
}

// Quantize maps every sample to the coordinates of its best-matching unit
// under the dim metric. It returns nil when w is empty or dim is
// unsupported; otherwise the result is parallel to x.
// Complexity: O(|x|·|w|).
func Quantize(x []core.Sample, w []core.Weight, dim core.Dim) []core.Point {
	if len(w) == 0 {
		return nil
	}
	dist, err := metric.SquaredForDim(dim)
	if err != nil {
		return nil
	}
	out := make([]core.Point, len(x))
	for i, s := range x {
		bmu, _ := FindBMU(s.Point, w, dist)
		out[i] = w[bmu].Point
	}

	return out
}
