// Command baacap estimates the capacity of a binary channel with the
// Blahut–Arimoto Algorithm.
//
// Usage:
//
//	go run ./cmd/baacap -channel bsc -p 0.1
//	go run ./cmd/baacap -channel deletion -p 0.1 -bits 6 -accuracy 0.01
//	go run ./cmd/baacap -channel deletion -p 0.2 -bits 8 -workers 8 -verbose
//
// For the deletion channel, -bits sets the transmitted codeword length; the
// received alphabet is every bit string of length ≤ -bits.  The BSC runs on
// single bits (its capacity has the closed form 1 − H(p), which makes it a
// handy sanity check of the whole pipeline).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/capacitylab/blahut/baa"
	"github.com/capacitylab/blahut/capacity"
	"github.com/capacitylab/blahut/channel"
)

func main() {
	channelKind := flag.String("channel", "bsc", "channel model: bsc or deletion")
	p := flag.Float64("p", 0.1, "crossover (bsc) or per-bit deletion (deletion) probability")
	bits := flag.Int("bits", 4, "transmitted codeword length (deletion channel)")
	accuracy := flag.Float64("accuracy", 0.05, "convergence bound on max log2(Q'/Q)")
	maxIters := flag.Int("max-iters", 1000, "iteration cap")
	workers := flag.Int("workers", 0, "parallel shards per stage (0 = GOMAXPROCS)")
	verbose := flag.Bool("verbose", false, "debug-level logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(*channelKind, *p, *bits, *accuracy, *maxIters, *workers); err != nil {
		logger.Error("baacap failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(channelKind string, p float64, bits int, accuracy float64, maxIters, workers int) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("probability must be in [0,1], got %g", p)
	}

	var (
		model                 baa.TransitionModel[channel.Codeword]
		transmitted, received []channel.Codeword
		err                   error
	)
	switch channelKind {
	case "bsc":
		model = channel.BSC(p)
		transmitted, err = channel.Enumerate(1)
		if err != nil {
			return err
		}
		received = transmitted
	case "deletion":
		model = channel.Deletion(p)
		transmitted, err = channel.Enumerate(bits)
		if err != nil {
			return err
		}
		received, err = channel.EnumerateUpTo(bits)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown channel %q (want bsc or deletion)", channelKind)
	}

	opts := capacity.DefaultOptions()
	opts.Accuracy = accuracy
	opts.MaxIterations = maxIters
	opts.Workers = workers

	slog.Info("starting BAA",
		slog.String("channel", channelKind),
		slog.Float64("p", p),
		slog.Int("transmitted", len(transmitted)),
		slog.Int("received", len(received)),
		slog.Float64("accuracy", accuracy),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	res, err := capacity.Solve(ctx, model, transmitted, received, baa.Uniform(len(transmitted)), opts)
	if err != nil {
		return err
	}

	slog.Info("finished",
		slog.Int("iterations", res.Iterations),
		slog.Bool("converged", res.Converged),
		slog.Float64("distance", res.Distance),
		slog.Duration("elapsed", time.Since(start)),
	)
	if !res.Converged {
		slog.Warn("iteration cap reached before convergence; rate is a lower bound")
	}

	fmt.Printf("rate: %.6f bits per channel use\n", res.RateBits)
	if channelKind == "deletion" {
		// Per input bit, for comparison across codeword lengths.
		fmt.Printf("rate: %.6f bits per input bit\n", res.RateBits/float64(bits))
	}
	slog.Debug("final distribution", slog.Any("q", res.Q))

	return nil
}
