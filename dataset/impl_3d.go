package dataset

import (
	"math"

	"github.com/katalvlaran/kohonen/core"
	"github.com/katalvlaran/kohonen/sampler"
)

// sphere draws points on a radius 5±0.5 shell. phi = acos(2u−1) keeps the
// density uniform per solid angle.
func sphere(n int, s *sampler.Sampler) []core.Sample {
	x := make([]core.Sample, 0, n)
	for i := 0; i < n; i++ {
		theta := s.Float64() * 2 * math.Pi
		phi := math.Acos(2*s.Float64() - 1)
		r := sphereRadius + s.Normal(0, sphereJitter)
		x = append(x, core.Sample{Point: core.Point{
			X: r * math.Sin(phi) * math.Cos(theta),
			Y: r * math.Sin(phi) * math.Sin(theta),
			Z: r * math.Cos(phi),
		}})
	}

	return x
}

// cube draws points on the six faces of a half-extent 5 cube. The face is
// uniform; in-face coordinates are N(0,1). The label is the face index.
func cube(n int, s *sampler.Sampler) []core.Sample {
	const h = cubeHalfExtent
	x := make([]core.Sample, 0, n)
	for i := 0; i < n; i++ {
		face := s.Intn(cubeFaces)
		a, b := s.Normal(0, cubeFaceSigma), s.Normal(0, cubeFaceSigma)
		var p core.Point
		switch face {
		case 0:
			p = core.Point{X: h, Y: a, Z: b}
		case 1:
			p = core.Point{X: -h, Y: a, Z: b}
		case 2:
			p = core.Point{X: a, Y: h, Z: b}
		case 3:
			p = core.Point{X: a, Y: -h, Z: b}
		case 4:
			p = core.Point{X: a, Y: b, Z: h}
		default:
			p = core.Point{X: a, Y: b, Z: -h}
		}
		x = append(x, core.Sample{Point: p, Label: face})
	}

	return x
}

// helix draws a 3D spiral whose radius and height both grow linearly with
// the sample index over two turns.
func helix(n int, s *sampler.Sampler) []core.Sample {
	x := make([]core.Sample, 0, n)
	for i := 0; i < n; i++ {
		frac := float64(i) / float64(n)
		t := frac * 2 * math.Pi * spiralTurns
		r := spiralRadius*frac + s.Normal(0, spiralJitter)
		x = append(x, core.Sample{Point: core.Point{
			X: r * math.Cos(t),
			Y: r * math.Sin(t),
			Z: helixHeight*frac + s.Normal(0, spiralJitter),
		}})
	}

	return x
}

// cloud draws an isotropic N(0,5) cloud.
func cloud(n int, s *sampler.Sampler) []core.Sample {
	x := make([]core.Sample, 0, n)
	for i := 0; i < n; i++ {
		x = append(x, core.Sample{Point: core.Point{
			X: s.Normal(0, cloudSigma),
			Y: s.Normal(0, cloudSigma),
			Z: s.Normal(0, cloudSigma),
		}})
	}

	return x
}
