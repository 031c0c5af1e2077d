// Package core defines the data model shared by every kohonen package:
// points in a 1-, 2- or 3-dimensional coordinate space, the immutable
// training samples, the trainable weight vectors ("neurons") and the
// Dataset that couples both for the lifetime of a training run.
//
// Model:
//
//	Sample  — a coordinate plus an advisory Label (display only, never
//	          consulted by training).
//	Weight  — a coordinate (the trained value) plus, for grid lattices,
//	          an integer grid address (GridX, GridY) used only for
//	          topological neighborhood distance.
//	Dataset — {Dim, X, Labels, W}. Generation creates X and W together;
//	          training replaces W coordinates only; reset discards both.
//
// Invariants:
//
//   - len(W) is fixed for a run; only coordinates mutate.
//   - X is never written after generation.
//   - Clone returns a deep copy, so snapshots handed to consumers never
//     alias the owner's slices.
//
// Concurrency:
//
//	Values in this package carry no locks. Ownership and serialization
//	are the responsibility of session.Session.
package core
