// File: methods_clone.go
// Role: Deep copies and emptiness checks for Dataset snapshots.
// Determinism:
//   - Clone preserves element order exactly; nil slices stay nil.

package core

// Empty reports whether training on d would be a no-op (X or W empty).
// Complexity: O(1).
func (d Dataset) Empty() bool {
	return len(d.X) == 0 || len(d.W) == 0
}

// Clone returns a deep copy of d. Samples and weights are plain values, so
// copying the slices is sufficient to break aliasing with the source.
// Complexity: O(|X| + |W|).
func (d Dataset) Clone() Dataset {
	return Dataset{
		Dim:    d.Dim,
		X:      CloneSamples(d.X),
		Labels: cloneInts(d.Labels),
		W:      CloneWeights(d.W),
	}
}

// CloneWeights returns an independent copy of w (nil stays nil).
func CloneWeights(w []Weight) []Weight {
	if w == nil {
		return nil
	}
	out := make([]Weight, len(w))
	copy(out, w)

	return out
}

// CloneSamples returns an independent copy of x (nil stays nil).
func CloneSamples(x []Sample) []Sample {
	if x == nil {
		return nil
	}
	out := make([]Sample, len(x))
	copy(out, x)

	return out
}

func cloneInts(a []int) []int {
	if a == nil {
		return nil
	}
	out := make([]int, len(a))
	copy(out, a)

	return out
}
