// SPDX-License-Identifier: MIT

package keyspace

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrInvalidLength is returned when a key length below 1 is requested.
	ErrInvalidLength = errors.New("keyspace: key length must be >= 1")

	// ErrInvalidRadix is returned when an odometer radix below 2 is requested.
	ErrInvalidRadix = errors.New("keyspace: radix must be >= 2")
)

// Scorer rates a candidate key. Higher is better. A NaN score means the
// key could not be rated and is never chosen.
//
// The key slice is only valid for the duration of the call; copy it to
// retain it.
type Scorer interface {
	Score(key []int) float64
}

// ScorerFunc adapts a plain function to Scorer.
type ScorerFunc func(key []int) float64

// Score calls f(key).
func (f ScorerFunc) Score(key []int) float64 {
	return f(key)
}

// Nop is the neutral scorer: every key scores 0.
var Nop Scorer = ScorerFunc(func([]int) float64 { return 0 })

// Summary reports the outcome of Enumerate.
type Summary struct {
	// Length is the key length that was enumerated.
	Length int

	// Visited is the number of keys offered to the scorer.
	Visited uint64

	// Best is the first key that reached BestScore; nil if no key had a
	// comparable (non-NaN) score.
	Best []int

	// BestScore is the highest score seen.
	BestScore float64

	// Complete is true when the whole key space was visited.
	Complete bool
}

// Option configures Enumerate.
type Option func(*Options)

// Options holds parameters for Enumerate.
type Options struct {
	// Ctx allows cancellation; checked every CheckInterval keys.
	Ctx context.Context

	// Limit, if > 0, stops after Limit keys.
	Limit uint64

	// ProgressEvery, if > 0, logs an info entry every ProgressEvery keys.
	ProgressEvery uint64

	// Logger receives progress entries. Defaults to zap.NewNop().
	Logger *zap.Logger
}

// CheckInterval is how many keys Enumerate visits between context checks.
const CheckInterval = 4096

// DefaultOptions returns Options with a background context, no limit,
// no progress logging and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}

// WithContext sets a context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLimit caps the number of visited keys. Zero means no cap.
func WithLimit(n uint64) Option {
	return func(o *Options) {
		o.Limit = n
	}
}

// WithProgressEvery logs progress every n keys. Zero disables it.
func WithProgressEvery(n uint64) Option {
	return func(o *Options) {
		o.ProgressEvery = n
	}
}

// WithLogger installs a zap logger. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
