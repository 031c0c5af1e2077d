// Package metric computes coordinate-space distances between a sample and a
// weight vector.
//
//	1D: |a.X − b.X|
//	2D: sqrt((a.X−b.X)² + (a.Y−b.Y)²)
//	3D: sqrt((a.X−b.X)² + (a.Y−b.Y)² + (a.Z−b.Z)²)
//
// Squared variants skip the square root and are used where only the ordering
// or a mean of squares matters (quantization error).
//
// Usage:
//
//	dist, err := metric.ForDim(core.Dim2)
//	d := dist(sample.Point, weight.Point)
package metric
