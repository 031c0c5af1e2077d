package som

import (
	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/lattice"
	"github.com/katalvlaran/kohonen/metric"
	"github.com/katalvlaran/kohonen/sampler"
	"github.com/katalvlaran/kohonen/schedule"
)

// PaletteSteps is the number of training steps of a colour palette.
const PaletteSteps = 100

// PaletteConfig trains RGB vectors (X=R, Y=G, Z=B) on a chain of colours:
// lr = 0.1·exp(−t/100), σ = 2·exp(−t/100), index-distance topology.
func PaletteConfig() Config {
	return Config{
		Dim:          core.Dim3,
		LearningRate: schedule.PaletteLearningRate(),
		Neighborhood: schedule.PaletteNeighborhood(),
		Topology:     lattice.Linear{},
	}
}

// TrainPalette runs steps training steps of PaletteConfig over colors,
// starting from palette, and returns the trained palette together with
// every colour replaced by its nearest palette entry. palette is not
// modified. Empty colors or palette yield a copy of palette and nil.
// Complexity: O(steps·|palette| + |colors|·|palette|).
func TrainPalette(colors []core.Sample, palette []core.Weight, steps int, s *sampler.Sampler) ([]core.Weight, []core.Point) {
	w := core.CloneWeights(palette)
	if len(colors) == 0 || len(palette) == 0 {
		return w, nil
	}

	e := &Engine{cfg: PaletteConfig(), dist: metric.Euclidean3D}
	for it := 0; it < steps; it++ {
		w = e.Step(colors, w, it, s).Weights
	}

	return w, Quantize(colors, w, core.Dim3)
}
