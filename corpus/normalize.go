// SPDX-License-Identifier: MIT

package corpus

import (
	"fmt"
	"strings"
	"unicode"
)

// Normalize removes all whitespace from raw and validates that what remains
// consists of 'A'..'Z' only.
//
// Lowercase letters are rejected rather than folded: the analysis is defined
// over the uppercase alphabet and silent folding would hide loader bugs.
func Normalize(raw string) (string, error) {
	text := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1 // drop
		}

		return r
	}, raw)
	if text == "" {
		return "", ErrEmptyCorpus
	}
	if err := Validate(text); err != nil {
		return "", err
	}

	return text, nil
}

// Validate returns ErrInvalidInput, wrapped with the rune and its byte
// offset, if text contains anything other than 'A'..'Z'.
func Validate(text string) error {
	for i, r := range text {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidInput, r, i)
		}
	}

	return nil
}
