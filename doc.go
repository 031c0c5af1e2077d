// Package kohonen is an in-memory engine for online Self-Organizing Maps:
// generate a labelled point cloud, scatter or grid a lattice of weights,
// and pull the lattice onto the data one random sample at a time.
//
// 🚀 What is in the box?
//
//	• Dataset generation: 1D blobs, 2D line/triangle/square/circle/spiral,
//	  3D sphere/cube/helix, or your own points
//	• Training: best-matching unit, Gaussian neighbourhood, decaying or
//	  fixed learning rate and σ
//	• Telemetry: quantization error and per-step metrics history
//	• Sessions: mutex-guarded run state plus a ticker-driven Loop with
//	  speed control, Start/Stop and Reset
//
// Packages:
//
//	core/     — Point, Sample, Weight, Dataset and deep copies
//	sampler/  — seeded random stream, normal draws, derived streams
//	metric/   — coordinate distances for 1D/2D/3D
//	schedule/ — learning-rate and neighbourhood-size schedules
//	lattice/  — topological distance between units (line, grid, free)
//	dataset/  — synthetic datasets and initial weights
//	som/      — BMU search, update rule, engine step, quantization error
//	session/  — training session, metrics log, timed loop
//
// Quick example:
//
//	data := dataset.DefaultConfig(core.Dim2)
//	train := som.DefaultConfig(core.Dim2, data.InputSize, lattice.KindLinear)
//	s, _ := session.New(data, train, session.WithSeed(1))
//	s.Run(1000)
//	fmt.Println(s.Iteration(), s.Error())
//
// Installation:
//
//	go get github.com/katalvlaran/kohonen
package kohonen
