package keyspace_test

import (
	"context"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hn275/vigenere-cryptanalysis/keyspace"
)

// TestKeys_LengthTwo checks exhaustiveness and order for length 2.
func TestKeys_LengthTwo(t *testing.T) {
	var keys [][]int
	for k := range keyspace.Keys(2) {
		keys = append(keys, slices.Clone(k))
	}

	require.Len(t, keys, 676)
	if diff := cmp.Diff([]int{0, 0}, keys[0]); diff != "" {
		t.Errorf("first key mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{25, 25}, keys[len(keys)-1]); diff != "" {
		t.Errorf("last key mismatch (-want +got):\n%s", diff)
	}
	for i := 1; i < len(keys); i++ {
		require.Equal(t, -1, slices.Compare(keys[i-1], keys[i]), "keys %d and %d not strictly increasing", i-1, i)
	}
}

// TestKeys_RestartAndEarlyStop checks the sequence restarts from zeros and
// honours a break.
func TestKeys_RestartAndEarlyStop(t *testing.T) {
	seq := keyspace.Keys(3)
	var first [][]int
	for k := range seq {
		first = append(first, slices.Clone(k))
		if len(first) == 3 {
			break
		}
	}
	assert.Equal(t, [][]int{{0, 0, 0}, {0, 0, 1}, {0, 0, 2}}, first)

	for k := range seq {
		assert.Equal(t, []int{0, 0, 0}, k, "second range must restart")
		break
	}

	count := 0
	for range keyspace.Keys(0) {
		count++
	}
	assert.Zero(t, count)
}

// TestEnumerate_Nop visits the full space with the neutral scorer.
func TestEnumerate_Nop(t *testing.T) {
	sum, err := keyspace.Enumerate(2, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Length)
	assert.Equal(t, uint64(676), sum.Visited)
	assert.True(t, sum.Complete)
	assert.Equal(t, []int{0, 0}, sum.Best)
	assert.Equal(t, 0.0, sum.BestScore)
}

// TestEnumerate_CustomScorer checks the scorer receives every key and the
// best key is retained after the buffer moves on.
func TestEnumerate_CustomScorer(t *testing.T) {
	target := []int{7, 19}
	calls := 0
	scorer := keyspace.ScorerFunc(func(key []int) float64 {
		calls++
		if slices.Equal(key, target) {
			return 1
		}
		return 0
	})

	sum, err := keyspace.Enumerate(2, scorer)
	require.NoError(t, err)
	assert.Equal(t, 676, calls)
	assert.Equal(t, target, sum.Best)
	assert.Equal(t, 1.0, sum.BestScore)
}

// TestEnumerate_Limit stops early and reports an incomplete run.
// TestEnumerate_NaNScores checks an unratable key never becomes Best, even
// when it is the first key visited.
func TestEnumerate_NaNScores(t *testing.T) {
	scorer := keyspace.ScorerFunc(func(key []int) float64 {
		switch {
		case key[0] == 0 && key[1] == 0:
			return math.NaN()
		case key[0] == 3 && key[1] == 4:
			return 1
		default:
			return 0
		}
	})
	sum, err := keyspace.Enumerate(2, scorer)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, sum.Best)
	assert.Equal(t, 1.0, sum.BestScore)
	assert.Equal(t, uint64(676), sum.Visited)

	sum, err = keyspace.Enumerate(1, keyspace.ScorerFunc(func([]int) float64 { return math.NaN() }))
	require.NoError(t, err)
	assert.Nil(t, sum.Best)
	assert.True(t, sum.Complete)
	assert.Equal(t, uint64(26), sum.Visited)
}

func TestEnumerate_Limit(t *testing.T) {
	sum, err := keyspace.Enumerate(3, keyspace.Nop, keyspace.WithLimit(100))
	require.NoError(t, err)
	assert.Equal(t, uint64(100), sum.Visited)
	assert.False(t, sum.Complete)

	// A limit equal to the space size is still complete.
	sum, err = keyspace.Enumerate(1, keyspace.Nop, keyspace.WithLimit(26))
	require.NoError(t, err)
	assert.Equal(t, uint64(26), sum.Visited)
	assert.True(t, sum.Complete)
}

// TestEnumerate_Cancelled returns the context error with a partial summary.
func TestEnumerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := keyspace.Enumerate(4, keyspace.Nop, keyspace.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, sum)
	assert.Zero(t, sum.Visited)
	assert.False(t, sum.Complete)
}

// TestEnumerate_InvalidLength rejects zero-length keys.
func TestEnumerate_InvalidLength(t *testing.T) {
	_, err := keyspace.Enumerate(0, keyspace.Nop)
	assert.ErrorIs(t, err, keyspace.ErrInvalidLength)
}

// TestEnumerate_Progress logs one entry per ProgressEvery keys.
func TestEnumerate_Progress(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	_, err := keyspace.Enumerate(2, keyspace.Nop,
		keyspace.WithLogger(zap.New(core)),
		keyspace.WithProgressEvery(100))
	require.NoError(t, err)

	entries := logs.FilterMessage("enumeration progress").All()
	require.Len(t, entries, 6)
	assert.Equal(t, "DV", entries[0].ContextMap()["key"], "100th key is [3 21]")
}
