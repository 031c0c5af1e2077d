package dataset

import (
	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/sampler"
)

// twoBlobs1D draws two N(∓5, 1) blobs on the X axis, labels 0 and 1.
func twoBlobs1D(n int, s *sampler.Sampler) []core.Sample {
	centers := [2]float64{-blobOffset, blobOffset}
	x := make([]core.Sample, 0, n)
	for label, count := range split(n, len(centers)) {
		for i := 0; i < count; i++ {
			x = append(x, core.Sample{
				Point: core.Point{X: s.Normal(centers[label], blobSigma)},
				Label: label,
			})
		}
	}

	return x
}

// featureBlobs are the three 1D feature clusters. Only X is trained; Y
// spreads the clusters apart for display.
var featureBlobs = []struct {
	cx, sx, cy, sy float64
}{
	{-5, 1, 1, 0.5},
	{5, 1, -1, 0.5},
	{-1, 1, -0.75, 0.25},
}

// features1D draws n samples split across featureBlobs, labels 0, 1, 2.
func features1D(n int, s *sampler.Sampler) []core.Sample {
	x := make([]core.Sample, 0, n)
	for label, count := range split(n, len(featureBlobs)) {
		b := featureBlobs[label]
		for i := 0; i < count; i++ {
			x = append(x, core.Sample{
				Point: core.Point{X: s.Normal(b.cx, b.sx), Y: s.Normal(b.cy, b.sy)},
				Label: label,
			})
		}
	}

	return x
}
