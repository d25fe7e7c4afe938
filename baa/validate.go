package baa

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// distTolerance bounds |Σ q[i] − 1| for a valid distribution.
const distTolerance = 1e-9

// ValidateDistribution checks that q is a probability distribution over a
// transmitted alphabet of size n: correct length, no negative entries, and
// total mass 1 within tolerance.
//
// The hot-path operations (Step, Rate, the partial primitives) deliberately
// skip these checks; call this once at the boundary where q enters the
// system, not per iteration.
//
// Errors: ErrLengthMismatch, ErrNegativeMass, ErrNotNormalized (wrapped with
// the offending values).
func ValidateDistribution(q []float64, n int) error {
	if len(q) != n {
		return fmt.Errorf("%w: len(q)=%d, alphabet size=%d", ErrLengthMismatch, len(q), n)
	}
	for i, p := range q {
		if p < 0 {
			return fmt.Errorf("%w: q[%d]=%g", ErrNegativeMass, i, p)
		}
	}
	if sum := floats.Sum(q); math.Abs(sum-1) > distTolerance {
		return fmt.Errorf("%w: Σq=%g", ErrNotNormalized, sum)
	}

	return nil
}

// Uniform returns the uniform distribution over an alphabet of size n, the
// usual starting point for the BAA loop.  n must be positive.
func Uniform(n int) []float64 {
	q := make([]float64, n)
	for i := range q {
		q[i] = 1 / float64(n)
	}

	return q
}
