// SPDX-License-Identifier: MIT

package corpus

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when Partition receives a key length below 1.
	ErrInvalidArgument = errors.New("corpus: invalid argument")

	// ErrInvalidInput is returned when text contains a rune outside 'A'..'Z'.
	ErrInvalidInput = errors.New("corpus: invalid input")

	// ErrEmptyCorpus is returned when normalization leaves no letters.
	ErrEmptyCorpus = errors.New("corpus: no letters in input")

	// ErrOptionViolation is returned when an Option is invalid.
	ErrOptionViolation = errors.New("corpus: invalid option supplied")
)

// Mode selects how Partition groups characters into blocks.
type Mode int

const (
	// Contiguous groups runs of keyLength consecutive characters.
	Contiguous Mode = iota

	// Interleaved groups every keyLength-th character (column transposition).
	Interleaved
)

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	switch m {
	case Contiguous:
		return "contiguous"
	case Interleaved:
		return "interleaved"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a name produced by Mode.String back into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "contiguous", "":
		return Contiguous, nil
	case "interleaved":
		return Interleaved, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
	}
}

// Option configures Partition.
type Option func(*Options)

// Options holds Partition parameters.
type Options struct {
	// Mode selects the block layout. Default Contiguous.
	Mode Mode
}

// DefaultOptions returns Options with Mode = Contiguous.
func DefaultOptions() Options {
	return Options{Mode: Contiguous}
}

// WithMode selects the partition layout.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}
