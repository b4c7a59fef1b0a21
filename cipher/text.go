// SPDX-License-Identifier: MIT

package cipher

import (
	"fmt"
	"strings"
)

// EncryptText encrypts an uppercase message under a repeating key.
//
// Character i is enciphered with shift key[i%len(key)] at block position
// i/len(key), which is the key schedule the contiguous partitioner assumes.
func EncryptText(plain string, key []int) (string, error) {
	return transform(plain, key, Encrypt)
}

// DecryptText reverses EncryptText.
func DecryptText(ciphertext string, key []int) (string, error) {
	return transform(ciphertext, key, Decrypt)
}

// ParseKey converts a letter key such as "LEMON" into shift values
// (L=11, E=4, ...). Lowercase letters are accepted and upper-cased.
func ParseKey(s string) ([]int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return nil, ErrEmptyKey
	}
	key := make([]int, 0, len(s))
	for i, r := range s {
		if !IsLetter(r) {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidLetter, r, i)
		}
		key = append(key, int(r-'A'))
	}

	return key, nil
}

// FormatKey renders shift values as letters, the inverse of ParseKey.
func FormatKey(key []int) string {
	var sb strings.Builder
	sb.Grow(len(key))
	for _, k := range key {
		sb.WriteRune(Letter(k))
	}

	return sb.String()
}

func transform(text string, key []int, fn func(rune, int, int) int) (string, error) {
	if len(key) == 0 {
		return "", ErrEmptyKey
	}
	n := len(key)
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		r := rune(text[i])
		if !IsLetter(r) {
			return "", fmt.Errorf("%w: %q at offset %d", ErrInvalidLetter, r, i)
		}
		out[i] = byte('A' + fn(r, key[i%n], i/n)) // column shift, block position
	}

	return string(out), nil
}
