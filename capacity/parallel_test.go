package capacity_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capacitylab/blahut/baa"
	"github.com/capacitylab/blahut/capacity"
)

// symbols returns the index alphabet [0, n).
func symbols(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}

	return s
}

// randomChannel builds a random row-stochastic nI×nJ model over ints.
func randomChannel(rng *rand.Rand, nI, nJ int) baa.TransitionModel[int] {
	table := make([][]float64, nI)
	for i := range table {
		row := make([]float64, nJ)
		sum := 0.0
		for j := range row {
			row[j] = rng.Float64() + 1e-3
			sum += row[j]
		}
		for j := range row {
			row[j] /= sum
		}
		table[i] = row
	}

	return func(t, r int) float64 { return table[t][r] }
}

// TestShardedLogDenominators_MatchesSerial: sharding the received axis must
// reproduce the serial result exactly (disjoint output slices, no combine
// arithmetic).
func TestShardedLogDenominators_MatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	model := randomChannel(rng, 5, 9)
	transmitted, received := symbols(5), symbols(9)
	q := baa.Uniform(5)

	serial := baa.LogDenominators(model, transmitted, received, q)
	for _, workers := range []int{1, 2, 4, 16} {
		sharded, err := capacity.ShardedLogDenominators(context.Background(), model, transmitted, received, q, workers)

		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, serial, sharded, "workers=%d must be bit-identical", workers)
	}
}

// TestShardedLogAlphas_MatchesSerial: same property along the transmitted
// axis, given the full denominator vector.
func TestShardedLogAlphas_MatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	opts := baa.DefaultOptions()
	model := randomChannel(rng, 9, 5)
	transmitted, received := symbols(9), symbols(5)
	q := baa.Uniform(9)
	logWDen := baa.LogDenominators(model, transmitted, received, q)

	serial := baa.PartialLogAlphas(model, transmitted, received, q, logWDen, opts)
	for _, workers := range []int{1, 3, 9, 100} {
		sharded, err := capacity.ShardedLogAlphas(context.Background(), model, transmitted, received, q, logWDen, opts, workers)

		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, serial, sharded, "workers=%d must be bit-identical", workers)
	}
}

// TestStep_MatchesSerialStep: the parallel step agrees with baa.Step within
// floating tolerance (shard-internal addition order is the only difference).
func TestStep_MatchesSerialStep(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	opts := baa.DefaultOptions()
	model := randomChannel(rng, 8, 6)
	transmitted, received := symbols(8), symbols(6)
	q := baa.Uniform(8)

	serial, err := baa.Step(model, transmitted, received, q, opts)
	require.NoError(t, err)

	parallel, err := capacity.Step(context.Background(), model, transmitted, received, q, opts, 3)
	require.NoError(t, err)

	require.Len(t, parallel, 8)
	for i := range serial {
		assert.InDelta(t, serial[i], parallel[i], 1e-12, "entry %d", i)
	}
}

// TestShardedRate_MatchesSerial: partial rates over transmitted sub-ranges
// sum to the serial rate.
func TestShardedRate_MatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	opts := baa.DefaultOptions()
	model := randomChannel(rng, 7, 7)
	transmitted, received := symbols(7), symbols(7)
	q := baa.Uniform(7)

	serial := baa.Rate(model, transmitted, received, q, opts)
	sharded, err := capacity.ShardedRate(context.Background(), model, transmitted, received, q, opts, 4)

	require.NoError(t, err)
	assert.InDelta(t, serial, sharded, 1e-12)
}

// TestStep_EmptyAlphabet propagates the core's guard.
func TestStep_EmptyAlphabet(t *testing.T) {
	model := randomChannel(rand.New(rand.NewSource(15)), 2, 2)

	_, err := capacity.Step(context.Background(), model, nil, symbols(2), nil, baa.DefaultOptions(), 2)
	assert.ErrorIs(t, err, baa.ErrEmptyAlphabet)
}

// TestStep_CancelledContext: a dead context aborts before computing.
func TestStep_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	model := randomChannel(rand.New(rand.NewSource(16)), 4, 4)

	_, err := capacity.Step(ctx, model, symbols(4), symbols(4), baa.Uniform(4), baa.DefaultOptions(), 2)
	assert.ErrorIs(t, err, context.Canceled)
}
