// SPDX-License-Identifier: MIT

package keylen

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/hn275/vigenere-cryptanalysis/corpus"
	"github.com/hn275/vigenere-cryptanalysis/ioc"
)

// Select scans candidate key lengths over ciphertext and returns the most
// plausible one.
//
// ciphertext must already be normalized ('A'..'Z' only, see corpus.Normalize).
//
// Example:
//
//	res, err := keylen.Select(ct, keylen.WithRange(1, 25))
//	if err != nil {
//		return err
//	}
//	fmt.Println("key length:", res.Length)
func Select(ciphertext string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if ciphertext == "" {
		return nil, ErrEmptyCiphertext
	}
	if err := corpus.Validate(ciphertext); err != nil {
		return nil, err
	}

	var (
		res *Result
		err error
	)
	switch o.Strategy {
	case ColumnAverage:
		res, err = selectColumnAverage(ciphertext, &o)
	default:
		res, err = selectSumOfSquares(ciphertext, &o)
	}
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("key length selected",
		zap.Int("length", res.Length),
		zap.Float64("diff", res.Diff),
		zap.Stringer("strategy", o.Strategy))

	return res, nil
}

// selectSumOfSquares keeps the first length whose raw diff is strictly below
// the running best. The baseline is the ceiling of the first diff.
func selectSumOfSquares(text string, o *Options) (*Result, error) {
	hi := scanLimit(len(text), o.MinLength, o.MaxLength)
	res := &Result{
		Length:     o.MinLength,
		Candidates: make([]Candidate, 0, hi-o.MinLength+1),
	}
	for i := 0; i <= hi-o.MinLength; i++ {
		n := o.MinLength + i
		blocks, err := corpus.Partition(text, n, corpus.WithMode(o.Mode))
		if err != nil {
			return nil, err
		}
		score := ioc.Score(blocks, len(text))
		c := Candidate{Length: n, Score: score, Diff: o.Target - score}
		if err := o.record(res, c); err != nil {
			return nil, err
		}

		if n == o.MinLength {
			res.Diff = math.Ceil(c.Diff)
			continue
		}
		if c.Diff < res.Diff {
			res.Diff = c.Diff
			res.Length = n
		}
	}

	return res, nil
}

// selectColumnAverage ranks lengths by how close the mean positional IoC of
// the interleaved columns is to the target.
func selectColumnAverage(text string, o *Options) (*Result, error) {
	lo := max(o.MinLength, 2)
	hi := scanLimit(len(text), lo, o.MaxLength)
	res := &Result{
		Length:     lo,
		Diff:       math.Inf(1),
		Candidates: make([]Candidate, 0, hi-lo+1),
	}
	for i := 0; i <= hi-lo; i++ {
		n := lo + i
		cols, err := corpus.Partition(text, n, corpus.WithMode(corpus.Interleaved))
		if err != nil {
			return nil, err
		}
		var sum float64
		for _, col := range cols {
			sum += ioc.Positional(col)
		}
		avg := sum / float64(len(cols))
		c := Candidate{Length: n, Score: avg, Diff: math.Abs(avg - o.Target)}
		if err := o.record(res, c); err != nil {
			return nil, err
		}
		if c.Diff < res.Diff {
			res.Diff = c.Diff
			res.Length = n
		}
	}

	return res, nil
}

// scanLimit caps the last scanned length at the text length. Every length
// past len(text) partitions into the same blocks as len(text) in both modes,
// so its diff ties and the strict comparison can never pick it. A range that
// starts beyond the text still scans its first length.
func scanLimit(textLen, lo, hi int) int {
	return min(hi, max(textLen, lo))
}

func (o *Options) record(res *Result, c Candidate) error {
	res.Candidates = append(res.Candidates, c)
	o.Logger.Debug("candidate scored",
		zap.Int("length", c.Length),
		zap.Float64("score", c.Score),
		zap.Float64("diff", c.Diff))
	if o.OnCandidate != nil {
		if err := o.OnCandidate(c); err != nil {
			return fmt.Errorf("keylen: candidate %d: %w", c.Length, err)
		}
	}

	return nil
}

// validate checks option invariants and fills strategy-specific defaults.
func (o *Options) validate() error {
	if o.MinLength < 1 {
		return fmt.Errorf("%w: min length %d < 1", ErrOptionViolation, o.MinLength)
	}
	if o.MaxLength < o.MinLength {
		return fmt.Errorf("%w: max length %d < min length %d", ErrOptionViolation, o.MaxLength, o.MinLength)
	}
	if math.IsNaN(o.Target) || math.IsInf(o.Target, 0) {
		return fmt.Errorf("%w: target must be finite", ErrOptionViolation)
	}
	switch o.Mode {
	case corpus.Contiguous, corpus.Interleaved:
	default:
		return fmt.Errorf("%w: unknown mode %v", ErrOptionViolation, o.Mode)
	}
	switch o.Strategy {
	case SumOfSquares:
	case ColumnAverage:
		if o.MaxLength < 2 {
			return fmt.Errorf("%w: column-average needs max length >= 2", ErrOptionViolation)
		}
		if !o.targetSet {
			o.Target = ioc.EnglishStream
		}
	default:
		return fmt.Errorf("%w: unknown strategy %v", ErrOptionViolation, o.Strategy)
	}

	return nil
}
