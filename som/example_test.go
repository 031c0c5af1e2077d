package som_test

import (
	"fmt"

	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/lattice"
	"github.com/katalvlaran/kohonen/metric"
	"github.com/katalvlaran/kohonen/som"
)

// ExampleUpdate pulls a three-unit 1D chain toward a sample that lands on
// the last unit. The BMU is unchanged; its neighbours move by lr·h(d).
func ExampleUpdate() {
	w := []core.Weight{
		core.NewWeight(core.Point{X: 0}),
		core.NewWeight(core.Point{X: 1}),
		core.NewWeight(core.Point{X: 2}),
	}
	sample := core.Point{X: 2}

	bmu, _ := som.FindBMU(sample, w, metric.Linear)
	out := som.Update(sample, w, bmu, 0.5, 1, lattice.Linear{}, core.Dim1)
	for i, u := range out {
		fmt.Printf("w[%d] = %.4f\n", i, u.X)
	}
	// Output:
	// w[0] = 0.1353
	// w[1] = 1.3033
	// w[2] = 2.0000
}

// ExampleQuantizationError measures two samples against one weight.
func ExampleQuantizationError() {
	x := []core.Sample{
		{Point: core.Point{X: 3, Y: 4}},
		{Point: core.Point{X: 0, Y: 0}},
	}
	w := []core.Weight{core.NewWeight(core.Point{})}

	// sqrt((25 + 0) / 2)
	fmt.Printf("%.4f\n", som.QuantizationError(x, w, core.Dim2))
	// Output:
	// 3.5355
}
