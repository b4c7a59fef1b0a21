// SPDX-License-Identifier: MIT

package keyspace

import (
	"fmt"
	"math/bits"
)

// Odometer is a fixed-length counter whose digits each run 0..radix-1.
// The last digit is the least significant.
//
// A fresh Odometer shows all zeros and is not exhausted. Each Next moves to
// the following value; the call that would wrap past [radix-1 ... radix-1]
// resets the digits to zero, marks the odometer exhausted and returns false.
type Odometer struct {
	digits    []int
	radix     int
	exhausted bool
}

// NewOdometer returns an Odometer with length digits in base radix.
func NewOdometer(length, radix int) (*Odometer, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	if radix < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRadix, radix)
	}

	return &Odometer{digits: make([]int, length), radix: radix}, nil
}

// Len returns the number of digits.
func (o *Odometer) Len() int { return len(o.digits) }

// Radix returns the base of each digit.
func (o *Odometer) Radix() int { return o.radix }

// Exhausted reports whether Next has wrapped past the final value.
func (o *Odometer) Exhausted() bool { return o.exhausted }

// Digits returns a copy of the current digits.
func (o *Odometer) Digits() []int {
	out := make([]int, len(o.digits))
	copy(out, o.digits)

	return out
}

// view exposes the live digit buffer without copying.
func (o *Odometer) view() []int { return o.digits }

// Next advances to the following value and reports whether one exists.
// Once exhausted, Next keeps returning false until Reset.
func (o *Odometer) Next() bool {
	if o.exhausted {
		return false
	}
	for i := len(o.digits) - 1; i >= 0; i-- {
		o.digits[i]++
		if o.digits[i] < o.radix {
			return true // no carry
		}
		o.digits[i] = 0 // carry into the digit on the left
	}
	o.exhausted = true

	return false
}

// Reset returns the odometer to all zeros and clears exhaustion.
func (o *Odometer) Reset() {
	clear(o.digits)
	o.exhausted = false
}

// Size returns radix^length and false if the result overflows uint64.
func Size(length, radix int) (uint64, bool) {
	if length < 0 || radix < 0 {
		return 0, false
	}
	total := uint64(1)
	for i := 0; i < length; i++ {
		hi, lo := bits.Mul64(total, uint64(radix))
		if hi != 0 {
			return 0, false
		}
		total = lo
	}

	return total, true
}
