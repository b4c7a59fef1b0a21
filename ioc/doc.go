// Package ioc computes index-of-coincidence style statistics over
// partitioned ciphertext.
//
// 🚀 What is the index of coincidence?
//
//	The probability that two letters drawn from a text are equal. English
//	sits near 0.065–0.067; uniformly random letters sit near 1/26 ≈ 0.038.
//
// Functions:
//
//   - Frequencies(blocks): letter counts after undoing the block-position
//     shift: block b is decrypted with cipher.Decrypt(c, 0, b).
//   - Score(blocks, total): Σ (count[L] / total)², a simplified sum of
//     squared frequencies. total is the original ciphertext length, not the
//     number of letters counted.
//   - Classic(stream): the textbook Σ n(n-1) / N(N-1) on a raw stream,
//     with no positional adjustment; 0 when N ≤ 1.
//   - Positional(stream): Classic after undoing a shift of i on the i-th
//     letter, for interleaved columns.
//
// Score is intentionally not the textbook formula; key-length selection in
// package keylen is tuned against it.
//
// Complexity: all functions are O(n) in the number of letters.
package ioc
