// Package keyspace enumerates every candidate key of a given length and
// offers each one to a pluggable scoring strategy.
//
// What:
//
//   - Odometer: a fixed-length mixed-radix counter. Next increments the
//     last digit and carries leftward; once every digit has wrapped the
//     odometer reports itself exhausted.
//   - Keys(length): a lazy iter.Seq over all 26^length keys in base-26
//     order, most significant digit first ([0 0], [0 1], ... [25 25]).
//   - Enumerate(length, scorer, opts...): drives an Odometer, calls
//     scorer.Score for every key and keeps the highest-scoring one.
//
// Scoring:
//
//	Scorer is the extension point for plaintext-likelihood models. Nop
//	scores every key 0 and is used when no scorer is supplied, so an
//	unconfigured run visits the whole key space and reports the first key.
//
// Memory: O(length) regardless of the size of the key space. Keys are
// never materialized in bulk.
//
// Errors:
//
//   - ErrInvalidLength  length < 1
//   - ErrInvalidRadix   radix < 2
//   - context errors    Enumerate was cancelled through WithContext
package keyspace
