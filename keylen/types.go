// SPDX-License-Identifier: MIT

package keylen

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hn275/vigenere-cryptanalysis/corpus"
	"github.com/hn275/vigenere-cryptanalysis/ioc"
)

// Default scan range.
const (
	DefaultMinLength = 1
	DefaultMaxLength = 25
)

var (
	// ErrEmptyCiphertext is returned when Select receives an empty ciphertext.
	ErrEmptyCiphertext = errors.New("keylen: ciphertext is empty")

	// ErrOptionViolation is returned when an Option is invalid.
	ErrOptionViolation = errors.New("keylen: invalid option supplied")
)

// Strategy selects the statistic used to rank candidate lengths.
type Strategy int

const (
	// SumOfSquares ranks by Target - ioc.Score over the partitioned text.
	SumOfSquares Strategy = iota

	// ColumnAverage ranks by |mean ioc.Positional over columns - Target|.
	ColumnAverage
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case SumOfSquares:
		return "sum-of-squares"
	case ColumnAverage:
		return "column-average"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts a name produced by Strategy.String back into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "sum-of-squares", "":
		return SumOfSquares, nil
	case "column-average":
		return ColumnAverage, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
	}
}

// Candidate is the evaluation of one key length.
type Candidate struct {
	// Length is the candidate key length.
	Length int

	// Score is the statistic computed for Length (ioc.Score or the column mean).
	Score float64

	// Diff is the value compared between candidates; lower is better.
	Diff float64
}

// Result reports the outcome of Select.
type Result struct {
	// Length is the selected key length.
	Length int

	// Diff is the comparison value that won. For SumOfSquares this is the
	// ceiling-rounded baseline when the first candidate is never beaten.
	Diff float64

	// Candidates lists every scanned length in ascending order. The scan
	// stops at len(ciphertext) when MaxLength is larger.
	Candidates []Candidate
}

// Option configures Select.
type Option func(*Options)

// Options holds parameters for Select.
type Options struct {
	// Target is the reference IoC. Defaults to ioc.English for SumOfSquares
	// and ioc.EnglishStream for ColumnAverage.
	Target float64

	// MinLength and MaxLength bound the scan, inclusive. Lengths past the
	// ciphertext length are not scanned: they cannot change the result.
	MinLength int
	MaxLength int

	// Mode is the partition layout used by SumOfSquares.
	Mode corpus.Mode

	// Strategy picks the ranking statistic.
	Strategy Strategy

	// Logger receives a debug entry per candidate. Defaults to zap.NewNop().
	Logger *zap.Logger

	// OnCandidate, if non-nil, is invoked after each candidate is scored.
	// Returning an error aborts Select with that error.
	OnCandidate func(Candidate) error

	targetSet bool
}

// DefaultOptions returns Options for the 1..25 SumOfSquares scan.
func DefaultOptions() Options {
	return Options{
		Target:    ioc.English,
		MinLength: DefaultMinLength,
		MaxLength: DefaultMaxLength,
		Mode:      corpus.Contiguous,
		Strategy:  SumOfSquares,
		Logger:    zap.NewNop(),
	}
}

// WithTarget overrides the reference IoC.
func WithTarget(target float64) Option {
	return func(o *Options) {
		o.Target = target
		o.targetSet = true
	}
}

// WithRange sets the inclusive candidate range.
func WithRange(minLength, maxLength int) Option {
	return func(o *Options) {
		o.MinLength = minLength
		o.MaxLength = maxLength
	}
}

// WithMode selects the partition layout for SumOfSquares.
func WithMode(m corpus.Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithStrategy selects the ranking statistic.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithLogger installs a zap logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnCandidate installs a hook called for each scored candidate.
func WithOnCandidate(fn func(Candidate) error) Option {
	return func(o *Options) {
		o.OnCandidate = fn
	}
}
