// SPDX-License-Identifier: MIT

package ioc

import "github.com/hn275/vigenere-cryptanalysis/cipher"

const (
	// English is the reference IoC the key-length selector compares against.
	English = 0.065

	// EnglishStream is the per-column reference the column-average
	// selector compares the mean Positional IoC against.
	EnglishStream = 0.067
)

// Frequencies decrypts every character of block b with key shift 0 at
// position b and counts the resulting letters across all blocks.
func Frequencies(blocks []string) [cipher.AlphabetSize]int {
	var counts [cipher.AlphabetSize]int
	for b, block := range blocks {
		for i := 0; i < len(block); i++ {
			counts[cipher.Decrypt(rune(block[i]), 0, b)]++
		}
	}

	return counts
}

// Score returns Σ (count[L]/total)² over the position-adjusted letter counts
// of blocks. total must be the length of the ciphertext the blocks were cut
// from; a non-positive total yields 0.
func Score(blocks []string, total int) float64 {
	if total <= 0 {
		return 0
	}
	counts := Frequencies(blocks)
	n := float64(total)
	var sum float64
	for _, c := range counts {
		f := float64(c) / n
		sum += f * f
	}

	return sum
}

// Classic returns the textbook index of coincidence of stream,
// Σ n_L(n_L-1) / (N(N-1)). Streams shorter than two letters score 0.
func Classic(stream string) float64 {
	return coincidence(stream, false)
}

// Positional is Classic applied after undoing a shift of i on the i-th
// letter of stream. An interleaved column under cipher.EncryptText carries
// exactly that shift: its i-th letter sits in block i.
func Positional(stream string) float64 {
	return coincidence(stream, true)
}

func coincidence(stream string, positional bool) float64 {
	n := len(stream)
	if n <= 1 {
		return 0
	}
	var counts [cipher.AlphabetSize]int
	for i := 0; i < n; i++ {
		pos := 0
		if positional {
			pos = i
		}
		counts[cipher.Decrypt(rune(stream[i]), 0, pos)]++
	}
	var pairs int
	for _, c := range counts {
		pairs += c * (c - 1)
	}

	return float64(pairs) / float64(n*(n-1))
}
