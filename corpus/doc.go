// Package corpus prepares ciphertext for statistical analysis: it normalizes
// raw input and splits it into blocks for a candidate key length.
//
// What:
//
//   - Normalize strips whitespace from loader input and rejects anything
//     that is not an uppercase letter 'A'..'Z'.
//   - Partition splits a ciphertext into blocks for a candidate key length.
//
// Partition modes:
//
//   - Contiguous (default): block b holds characters [b*k, b*k+k). This is
//     a plain chunking, ceil(n/k) blocks, only the last one may be short.
//     Concatenating the blocks reproduces the input.
//
//   - Interleaved: block c holds characters c, c+k, c+2k, ... (the classic
//     column transposition). min(k, n) blocks.
//
// The two modes disagree about what a "block" is. The scorer in package ioc
// decrypts block b at position b, which matches the key schedule of
// cipher.EncryptText only under Contiguous, so Contiguous stays the default.
//
// Errors:
//
//   - ErrInvalidArgument  keyLength < 1
//   - ErrInvalidInput     a rune outside 'A'..'Z' (after whitespace stripping)
//   - ErrEmptyCorpus      Normalize produced no letters
//   - ErrOptionViolation  an Option carried an unknown Mode
//
// Complexity: Partition is O(n) time and O(n) memory.
package corpus
