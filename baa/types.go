// Package baa defines the channel-facing types and tuning options for the
// Blahut–Arimoto core.
package baa

// TransitionModel is the channel: the probability, in [0,1], that transmitted
// symbol t is observed as received symbol r.  It must be a pure function of
// its arguments — the core calls it freely from concurrent goroutines and
// assumes repeated calls with the same pair return the same value.
//
// Symbols are opaque to the core; S is whatever the caller's codeword layer
// uses (see the channel package for bit-codeword models).
type TransitionModel[S any] func(t, r S) float64

// Options carries the numeric thresholds of the core.
//
// The streaming (row-major) path and the dense reference path intentionally
// keep separate thresholds: the dense path exists as a cross-check of the
// streaming one, and both reproduce their historical behavior by default.
//
// Fields:
//   - AlphaSkipEpsilon — transition probabilities below this contribute zero
//     to a log-alpha sum (their x·log x limit is 0).
//   - RateSkipEpsilon  — same role in the row-major rate sum.
//   - DenseSkipEpsilon — same role in the dense reference rate sum.
//   - DenominatorFloor — a denominator that is NaN or below this floor is
//     clamped to it before its log is taken, keeping rates finite but
//     conservative instead of propagating -Inf/NaN.
type Options struct {
	AlphaSkipEpsilon float64
	RateSkipEpsilon  float64
	DenseSkipEpsilon float64
	DenominatorFloor float64
}

const (
	defaultAlphaSkipEpsilon = 1e-12
	defaultRateSkipEpsilon  = 1e-20
	defaultDenseSkipEpsilon = 1e-30
	defaultDenominatorFloor = 1e-50
)

// DefaultOptions returns the thresholds used by the reference implementation.
func DefaultOptions() Options {
	return Options{
		AlphaSkipEpsilon: defaultAlphaSkipEpsilon,
		RateSkipEpsilon:  defaultRateSkipEpsilon,
		DenseSkipEpsilon: defaultDenseSkipEpsilon,
		DenominatorFloor: defaultDenominatorFloor,
	}
}
