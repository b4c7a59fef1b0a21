// Package keylen estimates the key length of a position-keyed Vigenère
// ciphertext by scanning candidate lengths and comparing an index-of-
// coincidence statistic against a reference value.
//
// What:
//
//   - Select(ciphertext, opts...) scans lengths MinLength..MaxLength
//     (default 1..25) and returns the winner together with per-candidate
//     diagnostics. The scan stops at len(ciphertext): a longer length
//     yields the same blocks as len(ciphertext) and can never win.
//
// Strategies:
//
//   - SumOfSquares (default): partition the ciphertext (contiguous chunks by
//     default), score it with ioc.Score and compute diff = Target - score.
//     The first candidate's diff is rounded up with math.Ceil and used as
//     the baseline; every later candidate replaces the current best only if
//     its raw diff is strictly smaller. Target defaults to ioc.English.
//
//   - ColumnAverage: split the ciphertext into interleaved columns, average
//     ioc.Positional over them and compute diff = |avg - Target|. Smallest
//     diff wins, ties keep the shorter length. Length 1 is skipped and Target
//     defaults to ioc.EnglishStream.
//
// Options:
//
//	WithTarget, WithRange, WithMode, WithStrategy, WithLogger, WithOnCandidate
//
// Errors:
//
//   - ErrEmptyCiphertext   ciphertext has no letters
//   - ErrOptionViolation   bad range, NaN/Inf target, unknown strategy or mode
//   - corpus.ErrInvalidInput  ciphertext contains non 'A'..'Z' runes
//   - any error returned by the OnCandidate hook
//
// Complexity: O(L·n) for L candidate lengths over n letters.
package keylen
