package capacity

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/capacitylab/blahut/baa"
)

// Solve runs the BAA loop from the starting distribution q0 until the
// convergence distance drops below opts.Accuracy or opts.MaxIterations is
// reached, then reports the final distribution and its rate in bits.
//
// q0 is read, never mutated; validate it with baa.ValidateDistribution if it
// comes from outside.  Cancellation is honored between steps: the context is
// checked before each iteration, and a cancelled run returns the context's
// error with no partial result.
//
// Errors: opts validation errors, ctx.Err(), and baa.ErrZeroMassAlpha /
// baa.ErrEmptyAlphabet surfaced from the step.
func Solve[S any](ctx context.Context, model baa.TransitionModel[S], transmitted, received []S, q0 []float64, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	workers := opts.workers()

	q := append([]float64(nil), q0...)
	res := Result{}
	for res.Iterations < opts.MaxIterations {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		next, err := Step(ctx, model, transmitted, received, q, opts.Core, workers)
		if err != nil {
			return Result{}, err
		}
		res.Distance = distance(next, q)
		res.Iterations++
		q = next
		if res.Distance < opts.Accuracy {
			res.Converged = true
			break
		}
	}

	rateNats, err := ShardedRate(ctx, model, transmitted, received, q, opts.Core, workers)
	if err != nil {
		return Result{}, err
	}
	res.Q = q
	res.RateBits = rateNats / math.Ln2

	return res, nil
}

// distance is the BAA convergence bound max_i log2(next[i]/prev[i]).  A NaN
// ratio (both masses zero) is treated as no movement; a symbol gaining mass
// from exactly zero yields +Inf and keeps the loop running.
func distance(next, prev []float64) float64 {
	ratios := make([]float64, len(next))
	for i := range next {
		r := math.Log2(next[i] / prev[i])
		if math.IsNaN(r) {
			r = 0
		}
		ratios[i] = r
	}

	return floats.Max(ratios)
}
