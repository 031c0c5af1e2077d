package som

import (
	"math"

	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/metric"
)

// FindBMU returns the index of the weight closest to sample under dist and
// that distance. Ties keep the earliest index. Empty w yields (−1, +Inf).
// Complexity: O(|w|).
func FindBMU(sample core.Point, w []core.Weight, dist metric.Func) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	for i := range w {
		d := dist(sample, w[i].Point)
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	return best, bestDist
}
