package baa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"

	"github.com/capacitylab/blahut/baa"
)

// TestValidateDistribution_LengthMismatch rejects a Q that is not aligned
// with the transmitted alphabet.
func TestValidateDistribution_LengthMismatch(t *testing.T) {
	err := baa.ValidateDistribution([]float64{0.5, 0.5}, 3)
	assert.ErrorIs(t, err, baa.ErrLengthMismatch)
}

// TestValidateDistribution_NegativeMass rejects negative probabilities.
func TestValidateDistribution_NegativeMass(t *testing.T) {
	err := baa.ValidateDistribution([]float64{1.2, -0.2}, 2)
	assert.ErrorIs(t, err, baa.ErrNegativeMass)
}

// TestValidateDistribution_NotNormalized rejects mass away from 1.
func TestValidateDistribution_NotNormalized(t *testing.T) {
	err := baa.ValidateDistribution([]float64{0.5, 0.4}, 2)
	assert.ErrorIs(t, err, baa.ErrNotNormalized)
}

// TestValidateDistribution_Valid accepts a proper distribution.
func TestValidateDistribution_Valid(t *testing.T) {
	assert.NoError(t, baa.ValidateDistribution([]float64{0.25, 0.25, 0.5}, 3))
}

// TestUniform returns equal masses summing to 1.
func TestUniform(t *testing.T) {
	q := baa.Uniform(8)

	assert.Len(t, q, 8)
	assert.InDelta(t, 1.0, floats.Sum(q), 1e-12)
	assert.Equal(t, q[0], q[7])
	assert.NoError(t, baa.ValidateDistribution(q, 8))
}
