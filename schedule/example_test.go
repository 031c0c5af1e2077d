package schedule_test

import (
	"fmt"

	"github.com/katalvlaran/kohonen/schedule"
)

func ExampleLearningRate_At() {
	lr := schedule.DefaultLearningRate()
	for _, t := range []int{0, 1000, 3000} {
		fmt.Printf("t=%d lr=%.4f\n", t, lr.At(t))
	}
	// Output:
	// t=0 lr=0.1000
	// t=1000 lr=0.0368
	// t=3000 lr=0.0050
}

func ExampleNeighborhood_At() {
	line := schedule.LinearNeighborhood()
	grid := schedule.GridNeighborhood(36)
	fmt.Printf("line σ(0)=%.2f σ(5000)=%.2f\n", line.At(0), line.At(5000))
	fmt.Printf("grid σ(0)=%.2f\n", grid.At(0))
	// Output:
	// line σ(0)=2.00 σ(5000)=0.50
	// grid σ(0)=3.00
}
