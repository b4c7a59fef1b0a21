package ioc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hn275/vigenere-cryptanalysis/cipher"
	"github.com/hn275/vigenere-cryptanalysis/corpus"
	"github.com/hn275/vigenere-cryptanalysis/ioc"
)

// TestFixture_PositionalDecrypt walks the nine-letter fixture end to end:
// partition into ABC|DEF|GHI, then undo shifts 0, 1 and 2.
func TestFixture_PositionalDecrypt(t *testing.T) {
	blocks, err := corpus.Partition("ABCDEFGHI", 3)
	require.NoError(t, err)
	require.Equal(t, []string{"ABC", "DEF", "GHI"}, blocks)

	want := []string{"ABC", "CDE", "EFG"}
	for b, block := range blocks {
		var got strings.Builder
		for _, r := range block {
			got.WriteRune(cipher.Letter(cipher.Decrypt(r, 0, b)))
		}
		assert.Equal(t, want[b], got.String(), "block %d", b)
	}

	counts := ioc.Frequencies(blocks)
	assert.Equal(t, 1, counts[0])  // A
	assert.Equal(t, 1, counts[1])  // B
	assert.Equal(t, 2, counts[2])  // C
	assert.Equal(t, 1, counts[3])  // D
	assert.Equal(t, 2, counts[4])  // E
	assert.Equal(t, 1, counts[5])  // F
	assert.Equal(t, 1, counts[6])  // G
	assert.Equal(t, 0, counts[25]) // Z

	// (1+1+4+1+4+1+1) / 81
	assert.InDelta(t, 13.0/81.0, ioc.Score(blocks, 9), 1e-12)
}

// TestScore_UsesOriginalLength checks the denominator is the caller's total,
// not the number of counted letters.
func TestScore_UsesOriginalLength(t *testing.T) {
	blocks := []string{"AA"}
	assert.InDelta(t, 1.0, ioc.Score(blocks, 2), 1e-12)
	assert.InDelta(t, 0.25, ioc.Score(blocks, 4), 1e-12)
	assert.Equal(t, 0.0, ioc.Score(blocks, 0))
	assert.Equal(t, 0.0, ioc.Score(nil, 10))
}

// TestScore_Deterministic calls Score twice on the same input.
func TestScore_Deterministic(t *testing.T) {
	text := "COTKXNHWJGXABFZPKGJCWGHMYQGEBJYBGQXJIRDCVLVPPWNKSIPXAMTKUQ"
	for k := 1; k <= 10; k++ {
		blocks, err := corpus.Partition(text, k)
		require.NoError(t, err)
		first := ioc.Score(blocks, len(text))
		second := ioc.Score(blocks, len(text))
		assert.Equal(t, first, second, "k=%d", k)
		assert.GreaterOrEqual(t, first, 0.0)
	}
}

// TestClassic covers the textbook formula and its short-stream stub.
func TestClassic(t *testing.T) {
	assert.Equal(t, 0.0, ioc.Classic(""))
	assert.Equal(t, 0.0, ioc.Classic("Q"))
	assert.InDelta(t, 1.0, ioc.Classic("ZZZZ"), 1e-12)
	assert.Equal(t, 0.0, ioc.Classic("ABCDEFGHIJKLMNOPQRSTUVWXYZ"))
	// AABB: 2*1 + 2*1 over 4*3
	assert.InDelta(t, 4.0/12.0, ioc.Classic("AABB"), 1e-12)
}

// TestPositional undoes the per-letter shift before counting.
func TestPositional(t *testing.T) {
	// ABCD decrypts to AAAA at positions 0..3.
	assert.InDelta(t, 1.0, ioc.Positional("ABCD"), 1e-12)
	assert.Equal(t, 0.0, ioc.Classic("ABCD"))
	assert.Equal(t, 0.0, ioc.Positional("A"))

	// A column of an EncryptText output recovers the plaintext column's IoC.
	ct, err := cipher.EncryptText("AAAAAAAAAAAA", []int{5, 9, 13})
	require.NoError(t, err)
	cols, err := corpus.Partition(ct, 3, corpus.WithMode(corpus.Interleaved))
	require.NoError(t, err)
	for _, col := range cols {
		assert.InDelta(t, 1.0, ioc.Positional(col), 1e-12, "column %s", col)
	}
}
