package baa

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogDenominators computes, for every received symbol j, the log of the
// marginal probability of receiving it under the input distribution q:
//
//	log W_j = log Σ_i q[i] · P(transmitted[i], received[j])
//
// The sum is accumulated in the linear domain and logged once; the
// probabilities involved do not span magnitudes that would need log-sum-exp.
// A zero marginal yields -Inf here — rate callers clamp it (see Rate).
//
// Precondition: len(q) == len(transmitted).  Must be recomputed whenever q
// changes.
func LogDenominators[S any](model TransitionModel[S], transmitted, received []S, q []float64) []float64 {
	return PartialLogDenominators(model, transmitted, received, q)
}

// PartialLogDenominators is LogDenominators restricted to a sub-range of the
// received alphabet.  Each denominator depends only on its own received
// symbol's column, so disjoint sub-ranges computed independently and
// concatenated in order reproduce the full result exactly.  The transmitted
// alphabet and q may NOT be partitioned: every denominator sums over all
// transmitted symbols.
func PartialLogDenominators[S any](model TransitionModel[S], transmitted, receivedSub []S, q []float64) []float64 {
	logDen := make([]float64, len(receivedSub))
	for j, r := range receivedSub {
		col := Col(model, transmitted, r)
		logDen[j] = math.Log(floats.Dot(col, q))
	}

	return logDen
}
