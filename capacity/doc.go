// Package capacity drives the Blahut–Arimoto core in package baa to a
// capacity estimate: it shards each iteration across parallel workers and
// loops until the update is close enough to a fixed point.
//
// 🚀 How it parallelizes:
//
//	The baa primitives are exactly partitionable, so each stage shards with
//	no locking and a trivial combine:
//	  • denominators — received alphabet split into contiguous sub-ranges,
//	    results concatenated in order (bit-identical to the serial call)
//	  • alphas       — transmitted alphabet split likewise, with the matching
//	    slices of Q, results concatenated
//	  • rate         — transmitted alphabet split, partial rates summed
//	Stabilization and normalization run serially on the gathered alpha
//	vector, as they must.
//
// ⚙️ Usage:
//
//	opts := capacity.DefaultOptions()
//	opts.Accuracy = 0.01
//	res, err := capacity.Solve(ctx, model, transmitted, received, baa.Uniform(len(transmitted)), opts)
//	if err != nil { ... }
//	fmt.Printf("capacity ≈ %.4f bits after %d iterations\n", res.RateBits, res.Iterations)
//
// Convergence criterion:
//
//	After each step the driver computes max_i log2(Qnew[i]/Qold[i]), treating
//	NaN ratios (0/0 mass) as zero.  When this distance drops below
//	Options.Accuracy the distribution has stopped moving on a log scale and
//	the loop ends; Options.MaxIterations caps the loop for channels that
//	converge slowly.  Choosing a different stopping policy is a matter of
//	calling capacity.Step directly in your own loop.
//
// Cancellation happens between steps only — a step in flight either
// completes or its result is discarded, never observed half-made.
package capacity
