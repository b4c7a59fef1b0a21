// SPDX-License-Identifier: MIT

package cipher

import "errors"

// AlphabetSize is the number of symbols in the cipher alphabet ('A'..'Z').
const AlphabetSize = 26

var (
	// ErrEmptyKey is returned when a text helper receives a zero-length key.
	ErrEmptyKey = errors.New("cipher: key is empty")

	// ErrInvalidLetter indicates a rune outside 'A'..'Z'. It is wrapped with
	// the offending rune and its offset.
	ErrInvalidLetter = errors.New("cipher: invalid letter")
)
