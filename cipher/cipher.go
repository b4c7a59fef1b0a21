// SPDX-License-Identifier: MIT

package cipher

// Encrypt shifts the plaintext letter forward by position+shift and returns
// the zero-based index of the resulting cipher letter.
//
// plain is expected to be in 'A'..'Z'; other runes are reduced modulo 26
// like any other operand.
func Encrypt(plain rune, shift, position int) int {
	v := reduce(int(plain-'A')) + reduce(position) + reduce(shift)

	return v % AlphabetSize
}

// Decrypt undoes Encrypt and returns the zero-based index of the plaintext
// letter. The result is always in [0, AlphabetSize).
func Decrypt(c rune, shift, position int) int {
	v := int(c-'A') - position%AlphabetSize - shift%AlphabetSize

	return ((v % AlphabetSize) + AlphabetSize) % AlphabetSize
}

// Letter maps an index to its letter. The index is reduced modulo 26 first,
// so Letter(26) == 'A' and Letter(-1) == 'Z'.
func Letter(index int) rune {
	return 'A' + rune(reduce(index))
}

// IsLetter reports whether r is an uppercase ASCII letter.
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// reduce returns v mod 26 in [0, 26).
func reduce(v int) int {
	v %= AlphabetSize
	if v < 0 {
		v += AlphabetSize
	}

	return v
}
