package capacity

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/capacitylab/blahut/baa"
)

// shardBounds splits [0, n) into at most `workers` contiguous half-open
// ranges of near-equal size, in order.  Concatenating the ranges reproduces
// [0, n) exactly, which is what makes the combines below lossless.
func shardBounds(n, workers int) [][2]int {
	if n == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	jump := (n + workers - 1) / workers
	bounds := make([][2]int, 0, workers)
	for start := 0; start < n; start += jump {
		bounds = append(bounds, [2]int{start, min(start+jump, n)})
	}

	return bounds
}

// ShardedLogDenominators computes baa.LogDenominators with the received
// alphabet split across parallel workers.  Each shard writes its own
// disjoint slice of the output, so no locking is needed and the result is
// identical to the serial call.
func ShardedLogDenominators[S any](ctx context.Context, model baa.TransitionModel[S], transmitted, received []S, q []float64, workers int) ([]float64, error) {
	out := make([]float64, len(received))
	g, ctx := errgroup.WithContext(ctx)
	for _, b := range shardBounds(len(received), workers) {
		b := b
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			copy(out[b[0]:b[1]], baa.PartialLogDenominators(model, transmitted, received[b[0]:b[1]], q))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// ShardedLogAlphas computes the full log-alpha vector with the transmitted
// alphabet (and the matching slices of q) split across parallel workers,
// given the complete log-denominator vector.
func ShardedLogAlphas[S any](ctx context.Context, model baa.TransitionModel[S], transmitted, received []S, q, logWDen []float64, opts baa.Options, workers int) ([]float64, error) {
	out := make([]float64, len(transmitted))
	g, ctx := errgroup.WithContext(ctx)
	for _, b := range shardBounds(len(transmitted), workers) {
		b := b
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			copy(out[b[0]:b[1]], baa.PartialLogAlphas(model, transmitted[b[0]:b[1]], received, q[b[0]:b[1]], logWDen, opts))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// ShardedRate computes the mutual information in nats, sharding the
// transmitted axis and summing the partial rates (an exact combine — the
// rate is a plain sum over transmitted symbols).
func ShardedRate[S any](ctx context.Context, model baa.TransitionModel[S], transmitted, received []S, q []float64, opts baa.Options, workers int) (float64, error) {
	logWDen, err := ShardedLogDenominators(ctx, model, transmitted, received, q, workers)
	if err != nil {
		return 0, err
	}

	bounds := shardBounds(len(transmitted), workers)
	partial := make([]float64, len(bounds))
	g, ctx := errgroup.WithContext(ctx)
	for s, b := range bounds {
		s, b := s, b
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partial[s] = baa.PartialRate(model, transmitted[b[0]:b[1]], received, q[b[0]:b[1]], logWDen, opts)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return floats.Sum(partial), nil
}

// Step performs one parallel BAA iteration qOld → qNew, assembling the
// sharded denominator and alpha stages and finishing with the serial
// stabilize-and-normalize on the gathered alpha vector.  Equivalent to
// baa.Step up to the order of floating-point additions within shards.
func Step[S any](ctx context.Context, model baa.TransitionModel[S], transmitted, received []S, qOld []float64, opts baa.Options, workers int) ([]float64, error) {
	if len(transmitted) == 0 || len(received) == 0 {
		return nil, baa.ErrEmptyAlphabet
	}
	logWDen, err := ShardedLogDenominators(ctx, model, transmitted, received, qOld, workers)
	if err != nil {
		return nil, err
	}
	logAlphas, err := ShardedLogAlphas(ctx, model, transmitted, received, qOld, logWDen, opts, workers)
	if err != nil {
		return nil, err
	}

	return baa.NormalizeAlphas(logAlphas)
}
