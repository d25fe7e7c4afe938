package baa

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Step — one Blahut–Arimoto iteration: qOld → qNew.
//
// Description:
//
//	A single step of the alternating optimization that drives the input
//	distribution toward capacity.  The rate of qNew is never below the rate
//	of qOld (the defining BAA property); the caller loops until its own
//	convergence criterion holds.
//
// Algorithm Outline:
//  1. log W_j  per received symbol j, from qOld      (LogDenominators)
//  2. log α_i  per transmitted symbol i, from log W  (PartialLogAlphas)
//  3. stabilize: α_i = exp(log α_i − max_k log α_k)  (NormalizeAlphas)
//  4. normalize: qNew[i] = α_i / Σ_k α_k
//
// Stages 1–2 are partitionable (see the package doc); stages 3–4 need the
// complete alpha vector.  No state persists between calls: each invocation
// is a pure function of its inputs, qOld is never mutated, and qNew is a
// freshly allocated vector with non-negative entries summing to 1.
//
// Preconditions (not re-validated here — see ValidateDistribution):
// len(qOld) == len(transmitted) > 0, len(received) > 0, qOld a distribution.
//
// Errors:
//   - ErrEmptyAlphabet — either alphabet is empty.
//   - ErrZeroMassAlpha — all stabilized alphas underflowed to zero; no valid
//     next distribution exists and nothing is returned.
func Step[S any](model TransitionModel[S], transmitted, received []S, qOld []float64, opts Options) ([]float64, error) {
	if len(transmitted) == 0 || len(received) == 0 {
		return nil, ErrEmptyAlphabet
	}
	logWDen := LogDenominators(model, transmitted, received, qOld)
	logAlphas := PartialLogAlphas(model, transmitted, received, qOld, logWDen, opts)

	return NormalizeAlphas(logAlphas)
}

// PartialLogAlphas computes the unnormalized log-domain update for a
// sub-range of the transmitted alphabet:
//
//	log α_i = Σ_j P(i,j) · (log q[i] + log P(i,j) − log W_j)
//
// qSub is the slice of the input distribution aligned with transmittedSub;
// logWDen must cover the FULL received alphabet.  Terms with
// P(i,j) < opts.AlphaSkipEpsilon contribute zero.  Disjoint transmitted
// sub-ranges computed independently concatenate, in order, to the full alpha
// vector exactly.
//
// A zero q[i] yields log α_i = -Inf, which survives stabilization as an
// exact zero share of the next distribution.
func PartialLogAlphas[S any](model TransitionModel[S], transmittedSub, received []S, qSub, logWDen []float64, opts Options) []float64 {
	logAlphas := make([]float64, len(transmittedSub))
	for i, t := range transmittedSub {
		logQ := math.Log(qSub[i])
		row := Row(model, t, received)
		logAlpha := 0.0
		for j, p := range row {
			if p < opts.AlphaSkipEpsilon {
				continue
			}
			logAlpha += p * (logQ + math.Log(p) - logWDen[j])
		}
		logAlphas[i] = logAlpha
	}

	return logAlphas
}

// NormalizeAlphas turns a complete log-alpha vector into the next input
// distribution: subtract the maximum (rescaling by a constant factor that
// cancels in the normalization, so exact in effect), exponentiate, divide by
// the sum.  The input slice is not modified.
//
// Returns ErrZeroMassAlpha when the stabilized alphas sum to zero or NaN —
// the guard the max-subtraction should make unreachable, kept so a broken
// model can never produce an unnormalized distribution.
func NormalizeAlphas(logAlphas []float64) ([]float64, error) {
	if len(logAlphas) == 0 {
		return nil, ErrEmptyAlphabet
	}
	maxLog := floats.Max(logAlphas)

	alphas := make([]float64, len(logAlphas))
	for i, la := range logAlphas {
		alphas[i] = math.Exp(la - maxLog)
	}

	sum := floats.Sum(alphas)
	if sum == 0 || math.IsNaN(sum) {
		return nil, ErrZeroMassAlpha
	}
	floats.Scale(1/sum, alphas)

	return alphas, nil
}
