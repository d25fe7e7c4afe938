package baa

import "math"

// Rate — mutual information of the channel under input distribution q.
//
// Description:
//
//	Computes, in nats:
//
//	  rate = Σ_i Σ_j q[i] · P(i,j) · (log P(i,j) − log W_j)
//
//	where W_j is the marginal probability of received symbol j (see
//	LogDenominators).  This is the row-major streaming form: transmitted
//	symbols outer, received inner, one probability row at a time — suited to
//	large received alphabets where the full table would not fit in memory.
//
// Numerics:
//   - terms with P(i,j) < opts.RateSkipEpsilon contribute exactly zero
//     (the x·log x limit), never NaN or -Inf;
//   - a denominator that is NaN or below opts.DenominatorFloor is clamped
//     to the floor before use, keeping the sum finite but conservative.
//
// Precondition: len(q) == len(transmitted).
// Complexity: O(n_I · n_J) model evaluations, O(n_J) extra memory.
func Rate[S any](model TransitionModel[S], transmitted, received []S, q []float64, opts Options) float64 {
	logWDen := LogDenominators(model, transmitted, received, q)

	return PartialRate(model, transmitted, received, q, logWDen, opts)
}

// PartialRate is the rate contribution of a sub-range of the transmitted
// alphabet, given the full log-denominator vector and the matching slice of
// q.  Contributions of disjoint sub-ranges sum to the full rate exactly, so
// a caller may shard the transmitted axis and add the partial results.
func PartialRate[S any](model TransitionModel[S], transmittedSub, received []S, qSub, logWDen []float64, opts Options) float64 {
	logFloor := math.Log(opts.DenominatorFloor)
	rate := 0.0
	for i, t := range transmittedSub {
		row := Row(model, t, received)
		qi := qSub[i]
		for j, p := range row {
			if p < opts.RateSkipEpsilon {
				continue
			}
			logDen := logWDen[j]
			if math.IsNaN(logDen) || logDen < logFloor {
				logDen = logFloor
			}
			rate += qi * p * (math.Log(p) - logDen)
		}
	}

	return rate
}

// RateDense — reference mutual-information computation over the full table.
//
// Materializes the complete n_I×n_J probability table, recomputes the
// denominators from it, then sums the same per-pair contributions as Rate.
// Intended for small alphabets, as an in-memory cross-check of the streaming
// form: both return the same value up to floating-point tolerance.
//
// Uses its own skip threshold (opts.DenseSkipEpsilon) and clamps NaN or
// sub-floor denominators to opts.DenominatorFloor in the linear domain,
// matching the reference behavior the streaming path is checked against.
//
// Complexity: O(n_I · n_J) time AND memory.
func RateDense[S any](model TransitionModel[S], transmitted, received []S, q []float64, opts Options) float64 {
	nI, nJ := len(transmitted), len(received)

	table := make([][]float64, nI)
	for i, t := range transmitted {
		table[i] = Row(model, t, received)
	}

	den := make([]float64, nJ)
	for j := 0; j < nJ; j++ {
		for i := 0; i < nI; i++ {
			den[j] += table[i][j] * q[i]
		}
	}

	rate := 0.0
	for i := 0; i < nI; i++ {
		for j := 0; j < nJ; j++ {
			p := table[i][j]
			if p < opts.DenseSkipEpsilon {
				continue
			}
			d := den[j]
			if math.IsNaN(d) || d < opts.DenominatorFloor {
				d = opts.DenominatorFloor
			}
			rate += q[i] * p * math.Log(p/d)
		}
	}

	return rate
}
