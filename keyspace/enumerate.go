// SPDX-License-Identifier: MIT

package keyspace

import (
	"iter"
	"math"

	"go.uber.org/zap"

	"github.com/hn275/vigenere-cryptanalysis/cipher"
)

// Keys returns a lazy sequence of every key of the given length over the
// 26-letter alphabet, in base-26 order with the last position fastest.
//
// The yielded slice is reused between iterations; copy it to keep it.
// Each range over the sequence starts again from [0 ... 0]. A length
// below 1 yields nothing.
func Keys(length int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		odo, err := NewOdometer(length, cipher.AlphabetSize)
		if err != nil {
			return
		}
		for {
			if !yield(odo.view()) {
				return
			}
			if !odo.Next() {
				return
			}
		}
	}
}

// Enumerate offers every key of the given length to scorer and returns the
// best one. A nil scorer is replaced by Nop.
//
// Ties keep the earlier key, so under Nop the best key is all zeros.
// NaN scores are counted as visited but never become Best; when every
// score is NaN, Best stays nil.
// Enumeration stops early when the Limit is reached (Complete=false) or the
// context is cancelled (the context error is returned with the partial
// Summary).
func Enumerate(length int, scorer Scorer, opts ...Option) (*Summary, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if scorer == nil {
		scorer = Nop
	}
	odo, err := NewOdometer(length, cipher.AlphabetSize)
	if err != nil {
		return nil, err
	}

	sum := &Summary{Length: length}
	total, ok := Size(length, cipher.AlphabetSize)
	if ok {
		o.Logger.Debug("enumeration started", zap.Int("length", length), zap.Uint64("keys", total))
	} else {
		o.Logger.Debug("enumeration started", zap.Int("length", length), zap.String("keys", "overflow"))
	}

	for {
		if sum.Visited%CheckInterval == 0 {
			if err := o.Ctx.Err(); err != nil {
				return sum, err
			}
		}

		key := odo.view()
		score := scorer.Score(key)
		if !math.IsNaN(score) && (sum.Best == nil || score > sum.BestScore) {
			sum.Best = append(sum.Best[:0], key...)
			sum.BestScore = score
		}
		sum.Visited++

		if o.ProgressEvery > 0 && sum.Visited%o.ProgressEvery == 0 {
			o.Logger.Info("enumeration progress",
				zap.Uint64("visited", sum.Visited),
				zap.String("key", cipher.FormatKey(key)))
		}
		if !odo.Next() {
			sum.Complete = true
			break
		}
		if o.Limit > 0 && sum.Visited >= o.Limit {
			break
		}
	}
	o.Logger.Debug("enumeration finished",
		zap.Uint64("visited", sum.Visited),
		zap.Bool("complete", sum.Complete),
		zap.String("best", cipher.FormatKey(sum.Best)))

	return sum, nil
}
