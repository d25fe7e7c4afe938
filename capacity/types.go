// Package capacity defines options and results for the BAA driver loop.
package capacity

import (
	"errors"
	"runtime"

	"github.com/capacitylab/blahut/baa"
)

// ErrBadAccuracy indicates a non-positive convergence accuracy.
var ErrBadAccuracy = errors.New("capacity: Accuracy must be positive")

// ErrBadIterations indicates a non-positive iteration cap.
var ErrBadIterations = errors.New("capacity: MaxIterations must be positive")

// Options configures the driver.
//
// Fields:
//   - Accuracy      — convergence bound on max_i log2(Qnew[i]/Qold[i]);
//     smaller is tighter (default 0.05).
//   - MaxIterations — hard cap on BAA steps (default 1000); hitting it
//     returns the best distribution found with Converged=false.
//   - Workers       — parallel shards per stage; values < 1 mean GOMAXPROCS.
//   - Core          — epsilon/floor thresholds passed through to baa.
type Options struct {
	Accuracy      float64
	MaxIterations int
	Workers       int
	Core          baa.Options
}

// DefaultOptions mirrors the reference driver: 0.05 accuracy, 1000-step cap,
// one worker per CPU, reference core thresholds.
func DefaultOptions() Options {
	return Options{
		Accuracy:      0.05,
		MaxIterations: 1000,
		Workers:       runtime.GOMAXPROCS(0),
		Core:          baa.DefaultOptions(),
	}
}

func (o Options) validate() error {
	if o.Accuracy <= 0 {
		return ErrBadAccuracy
	}
	if o.MaxIterations <= 0 {
		return ErrBadIterations
	}

	return nil
}

// workers returns the effective shard count, never below 1.
func (o Options) workers() int {
	if o.Workers < 1 {
		return runtime.GOMAXPROCS(0)
	}

	return o.Workers
}

// Result reports the outcome of a Solve run.
//
// Fields:
//   - Q          — the final input distribution (sums to 1).
//   - RateBits   — the mutual information of Q, in bits per channel use.
//   - Distance   — the last convergence distance max_i log2(Q'[i]/Q[i]).
//   - Iterations — BAA steps performed.
//   - Converged  — whether Distance < Accuracy was reached before the cap.
type Result struct {
	Q          []float64
	RateBits   float64
	Distance   float64
	Iterations int
	Converged  bool
}
