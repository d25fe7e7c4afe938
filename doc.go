// Package blahut computes channel capacity with the Blahut–Arimoto
// Algorithm — from one numerically stabilized iteration up to a parallel
// convergence loop over concrete binary channels.
//
// 🚀 What is blahut?
//
//	An information-theory toolkit built around one idea: a BAA step is a
//	pure, exactly partitionable function, so rate and capacity computations
//	decompose into independent partial sums that parallel workers can
//	combine without approximation.
//		• Core step: log-domain alphas, subtract-max stabilization, normalization
//		• Rate: streaming row-major form + dense cross-check reference
//		• Channels: binary symmetric and iid bit-deletion models over codewords
//		• Driver: sharded workers, convergence bound max log2(Q'/Q)
//
// ✨ Why choose blahut?
//
//   - Pure functions everywhere – no shared state, trivially concurrent
//   - Guarded numerics – epsilon skips and denominator floors, never NaN
//   - Generic core – bring your own symbol type and transition model
//   - Exact partitioning – shard axes documented per operation
//
// Everything is organized under three subpackages and a CLI:
//
//	baa/      — the Blahut–Arimoto core: denominators, rate, one step
//	channel/  — bit codewords, BSC and deletion transition models, symmetry reduction
//	capacity/ — sharded parallel driver and convergence loop
//	cmd/      — the baacap command-line capacity estimator
//
// Quick taste:
//
//	model := channel.BSC(0.1)
//	alphabet, _ := channel.Enumerate(1)
//	res, _ := capacity.Solve(ctx, model, alphabet, alphabet,
//		baa.Uniform(2), capacity.DefaultOptions())
//	// res.RateBits ≈ 0.531 = 1 − H(0.1)
//
// Dive into the package docs for the partitioning contracts and the
// examples/ directory for end-to-end programs.
package blahut
