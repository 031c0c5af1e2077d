package dataset

import (
	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/lattice"
	"github.com/katalvlaran/kohonen/sampler"
)

// scatteredWeights1D places n units at x ~ N(0,spread), y = 0.5.
func scatteredWeights1D(n int, spread float64, s *sampler.Sampler) []core.Weight {
	w := make([]core.Weight, 0, n)
	for i := 0; i < n; i++ {
		w = append(w, core.NewWeight(core.Point{X: s.Normal(0, spread), Y: weightOffset1D}))
	}

	return w
}

// scatteredWeights2D places n units with both coordinates ~ N(0,spread).
func scatteredWeights2D(n int, spread float64, s *sampler.Sampler) []core.Weight {
	w := make([]core.Weight, 0, n)
	for i := 0; i < n; i++ {
		w = append(w, core.NewWeight(core.Point{X: s.Normal(0, spread), Y: s.Normal(0, spread)}))
	}

	return w
}

// gridWeights2D places unit (i,j) at ((i−g/2)·2, (j−g/2)·2) plus jitter,
// keeping (i,j) as its grid address. g = ceil(sqrt(n)); the grid is filled
// row by row and truncated to n units.
func gridWeights2D(n int, jitter float64, s *sampler.Sampler) []core.Weight {
	g := lattice.SideFor(n)
	half := float64(g) / 2
	w := make([]core.Weight, 0, n)
	for i := 0; i < g; i++ {
		for j := 0; j < g && lattice.Index(i, j, g) < n; j++ {
			p := core.Point{
				X: (float64(i)-half)*gridStep2D + s.Normal(0, jitter),
				Y: (float64(j)-half)*gridStep2D + s.Normal(0, jitter),
			}
			w = append(w, core.NewGridWeight(p, i, j))
		}
	}

	return w
}

// gridWeights3D covers [−5,5]² in x,y with a g×g grid (g = ceil(sqrt(n)))
// and jitters all three axes, truncated to n units. A single-unit grid
// sits at (−5,−5).
func gridWeights3D(n int, jitter float64, s *sampler.Sampler) []core.Weight {
	g := lattice.SideFor(n)
	spacing := 0.0
	if g > 1 {
		spacing = gridExtent3D / float64(g-1)
	}
	lo := -gridExtent3D / 2
	w := make([]core.Weight, 0, n)
	for i := 0; i < g; i++ {
		for j := 0; j < g && lattice.Index(i, j, g) < n; j++ {
			p := core.Point{
				X: lo + float64(i)*spacing + s.Normal(0, jitter),
				Y: lo + float64(j)*spacing + s.Normal(0, jitter),
				Z: s.Normal(0, jitter),
			}
			w = append(w, core.NewGridWeight(p, i, j))
		}
	}

	return w
}

// PaletteWeights returns n colour units with integer channels drawn
// uniformly from [0,256), as X=R, Y=G, Z=B. Only WithSeed and WithSampler
// affect it.
func PaletteWeights(n int, opts ...Option) []core.Weight {
	g := newGenConfig(opts...)
	n = max(n, 0)
	w := make([]core.Weight, 0, n)
	for i := 0; i < n; i++ {
		w = append(w, core.NewWeight(core.Point{
			X: float64(g.sampler.Intn(paletteLevels)),
			Y: float64(g.sampler.Intn(paletteLevels)),
			Z: float64(g.sampler.Intn(paletteLevels)),
		}))
	}

	return w
}
