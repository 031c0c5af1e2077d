// SPDX-License-Identifier: MIT
// Package: kohonen/dataset
//
// errors.go — sentinel errors for the dataset package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the call site.
//   • Degenerate sizes are NOT errors: they produce empty slices.

package dataset

import "errors"

// ErrUnsupportedDim indicates Config.Dim is not one of core.Dim1..Dim3.
var ErrUnsupportedDim = errors.New("dataset: unsupported dimensionality")
