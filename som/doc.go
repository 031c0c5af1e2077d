// Package som implements the online Self-Organizing Map training step and
// the quantization-error metric.
//
// 🚀 One training step (Engine.Step):
//
//  1. If X or W is empty: no update, iteration unchanged.
//  2. Pick one sample uniformly at random from X (with replacement).
//  3. BMU search: linear scan over W under the coordinate metric; strict <
//     so the first unit at the minimum wins.
//  4. lr    = LearningRate.At(iteration)
//  5. σ     = Neighborhood.For(iteration, |W|)
//  6. For every unit i: d_i = Topology.Distance(i, bmu), h_i = exp(−d_i²/2σ²)
//  7. w_i  += lr · h_i · (x − w_i) on every active axis
//  8. iteration + 1; a new weight slice is returned, X is never touched.
//
// 📏 Quantization error (QuantizationError):
//
//	sqrt( mean over x of min over w of ‖x − w‖² ), 0 when X or W is empty.
//
// Performance:
//
//   - BMU search:        O(|W|·dim)
//   - Update:            O(|W|·dim)
//   - QuantizationError: O(|X|·|W|·dim)
//
// Both scans are deliberately linear. Target sizes are a few hundred points
// on each side, where a spatial index would cost more than it saves.
//
// Guards:
//
//	σ ≤ 0 is a caller contract violation. Kernel clamps it to MinSigma so the
//	update degenerates to winner-take-all instead of producing NaN weights.
package som
