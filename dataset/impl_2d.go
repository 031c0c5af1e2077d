package dataset

import (
	"math"

	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/sampler"
)

// blob is a Gaussian cluster center with the label its samples carry.
type blob struct {
	cx, cy float64
	label  int
}

var (
	lineBlobs = []blob{
		{-blobOffset, -blobOffset, 0},
		{blobOffset, blobOffset, 1},
	}
	// The third triangle cluster shares label 1 with the second.
	triangleBlobs = []blob{
		{-blobOffset, blobOffset, 0},
		{blobOffset, blobOffset, 1},
		{0, -blobOffset, 1},
	}
	squareBlobs = []blob{
		{-blobOffset, -blobOffset, 0},
		{blobOffset, blobOffset, 1},
		{-blobOffset, blobOffset, 2},
		{blobOffset, -blobOffset, 3},
	}
)

// blobs2D draws n samples split across the given clusters, σ=1 per axis.
func blobs2D(n int, clusters []blob, s *sampler.Sampler) []core.Sample {
	x := make([]core.Sample, 0, n)
	for k, count := range split(n, len(clusters)) {
		b := clusters[k]
		for i := 0; i < count; i++ {
			x = append(x, core.Sample{
				Point: core.Point{X: s.Normal(b.cx, blobSigma), Y: s.Normal(b.cy, blobSigma)},
				Label: b.label,
			})
		}
	}

	return x
}

// rings draws two concentric rings (outer r=5 label 0, inner r=2 label 1),
// evenly spaced in angle with N(0,0.5) radial jitter.
func rings(n int, s *sampler.Sampler) []core.Sample {
	radii := [2]float64{outerRingRadius, innerRingRadius}
	x := make([]core.Sample, 0, n)
	for label, count := range split(n, len(radii)) {
		for i := 0; i < count; i++ {
			angle := 2 * math.Pi * float64(i) / float64(count)
			r := radii[label] + s.Normal(0, ringJitter)
			x = append(x, core.Sample{
				Point: core.Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)},
				Label: label,
			})
		}
	}

	return x
}

// spirals draws two interleaved Archimedean arms (phase offset π), each
// making two full turns while the radius grows linearly from 0 to ~5.
func spirals(n int, s *sampler.Sampler) []core.Sample {
	x := make([]core.Sample, 0, n)
	for arm, count := range split(n, 2) {
		phase := float64(arm) * math.Pi
		for i := 0; i < count; i++ {
			frac := float64(i) / float64(count)
			angle := 2*math.Pi*spiralTurns*frac + phase
			r := spiralRadius*frac + s.Normal(0, spiralJitter)
			x = append(x, core.Sample{
				Point: core.Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)},
				Label: arm,
			})
		}
	}

	return x
}
