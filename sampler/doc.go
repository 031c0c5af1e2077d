// Package sampler provides the random streams used by dataset generation
// and training: uniform draws, index picks and normal variates via the
// Box-Muller transform.
//
// Policy:
//   - New(seed) is deterministic; seed==0 maps to a fixed default seed.
//   - NewRandom() seeds from the clock; values are then reproducible only
//     in distribution, which is the production default for interactive runs.
//   - Derive(stream) splits off an independent, deterministic substream
//     (SplitMix64 mixing), e.g. one for data generation and one for
//     sample selection.
//
// Concurrency:
//
//	A *Sampler wraps a math/rand.Rand and is NOT goroutine-safe. Give each
//	session its own Sampler; session.Session serializes access to it.
package sampler
