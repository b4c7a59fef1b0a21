// SPDX-License-Identifier: MIT

package corpus

import "fmt"

// Partition splits text into blocks for a candidate key length.
//
// Contiguous (default):
//
//	blocks = ceil(len(text)/keyLength)
//	block b = text[b*keyLength : min((b+1)*keyLength, len(text))]
//
// Interleaved:
//
//	blocks = min(keyLength, len(text))
//	block c = text[c], text[c+keyLength], text[c+2*keyLength], ...
//
// A keyLength larger than the text is allowed: Contiguous then yields a
// single block equal to text. Empty text yields no blocks.
//
// Partition does not validate the alphabet; call Validate or Normalize first.
func Partition(text string, keyLength int, opts ...Option) ([]string, error) {
	if keyLength < 1 {
		return nil, fmt.Errorf("%w: key length %d", ErrInvalidArgument, keyLength)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Mode {
	case Contiguous:
		return chunk(text, keyLength), nil
	case Interleaved:
		return columns(text, keyLength), nil
	default:
		return nil, fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(o.Mode))
	}
}

func chunk(text string, k int) []string {
	n := len(text)
	count := 0
	if n > 0 {
		count = (n-1)/k + 1 // ceil(n/k) without overflowing n+k
	}
	blocks := make([]string, 0, count)
	for start := 0; start < n; start += k {
		end := start + k
		if end > n {
			end = n // last block may be short
		}
		blocks = append(blocks, text[start:end])
	}

	return blocks
}

func columns(text string, k int) []string {
	n := len(text)
	if k > n {
		k = n
	}
	blocks := make([]string, k)
	for c := 0; c < k; c++ {
		buf := make([]byte, 0, (n-c+k-1)/k)
		for i := c; i < n; i += k {
			buf = append(buf, text[i])
		}
		blocks[c] = string(buf)
	}

	return blocks
}
