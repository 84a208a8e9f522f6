package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()

	assert.InDelta(t, 1.0, w.Sum(), 1e-12)
	require.NoError(t, w.Validate())
}

func TestWeightsValidate(t *testing.T) {
	w := DefaultWeights()
	w.Verified = 0.5
	assert.ErrorIs(t, w.Validate(), ErrInvalidWeights)

	w = DefaultWeights()
	w.Subject, w.Availability = -0.1, 0.65
	assert.ErrorIs(t, w.Validate(), ErrInvalidWeights)

	_, err := NewEngine(Weights{Subject: 1, Price: 1})
	assert.ErrorIs(t, err, ErrInvalidWeights)
}

func TestWeightsOfFollowsFactorOrder(t *testing.T) {
	w := DefaultWeights()
	want := []float64{0.30, 0.25, 0.20, 0.15, 0.07, 0.03}

	for i, f := range AllFactors() {
		assert.Equal(t, want[i], w.Of(f), f.String())
	}
}

func TestAggregate(t *testing.T) {
	w := DefaultWeights()

	var all Scores
	for _, f := range AllFactors() {
		all[f] = 1
	}
	assert.Equal(t, 1.0, w.Aggregate(all))
	assert.Equal(t, 0.0, w.Aggregate(Scores{}))

	// subject 0.7 → 0.21, price 0.5 → 0.075
	var partial Scores
	partial[FactorSubject] = 0.7
	partial[FactorPrice] = 0.5
	assert.InDelta(t, 0.285, w.Aggregate(partial), 1e-12)
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 0.123, roundScore(0.12349))
	assert.Equal(t, 0.124, roundScore(0.12351))
	assert.Equal(t, 0.5, roundScore(0.5))
}
