// Package cipher implements the letter-level substitution transform behind a
// position-keyed Vigenère cipher, plus text-level helpers built on it.
//
// What:
//
//   - Encrypt / Decrypt shift a single uppercase letter by a key shift and a
//     block position, modulo the 26-letter alphabet.
//   - EncryptText / DecryptText apply a repeating key to a whole message.
//     Character i uses shift key[i % len(key)] and position i / len(key),
//     i.e. the block it lands in when the text is chunked into runs of
//     len(key) characters.
//   - ParseKey / FormatKey convert between "LEMON"-style keys and shift slices.
//
// Arithmetic:
//
//	Encrypt(p, k, b) = (p - 'A' + b + k) mod 26
//	Decrypt(c, k, b) = ((c - 'A' - b - k) mod 26 + 26) mod 26
//
// Both results are always in [0, 26). Shifts and positions may be any int,
// including negatives; each term is reduced before it is summed so the
// intermediate never overflows.
//
// Errors:
//
//   - ErrEmptyKey       text helpers were given a zero-length key
//   - ErrInvalidLetter  a rune outside 'A'..'Z' reached a text helper
//
// Complexity:
//
//   - Encrypt, Decrypt: O(1)
//   - EncryptText, DecryptText: O(n)
package cipher
