// Package baa implements one iteration of the Blahut–Arimoto Algorithm (BAA)
// for computing the capacity of a discrete memoryless channel, together with
// the mutual-information (rate) computation it optimizes.
//
// 🚀 What is BAA?
//
//	BAA is an alternating-optimization procedure: given a channel and an input
//	distribution Q over the transmitted alphabet, one step produces a new
//	distribution Q' whose rate is never lower.  Iterating converges to the
//	channel capacity.  It's the standard tool for:
//	  • Capacity of channels with no closed-form solution (e.g. deletion channels)
//	  • Cross-checking analytic capacity results
//	  • Rate computation for a fixed, known input distribution
//
// ✨ Key features:
//   - one pure BAA step: Q → Q' (the caller drives the convergence loop)
//   - log-domain stabilized update: subtract-max before exponentiating
//   - two rate forms: streaming row-major and a dense cross-check reference
//   - partition-friendly primitives: denominators shard along the received
//     axis, alphas and rate along the transmitted axis, and partial results
//     combine exactly (concatenate/sum) with no approximation
//   - generic over the symbol type: the core only ever hands symbols to the
//     channel's TransitionModel
//
// ⚙️ Usage:
//
//	import "github.com/capacitylab/blahut/baa"
//
//	opts := baa.DefaultOptions()
//	q := []float64{0.5, 0.5}
//	qNext, err := baa.Step(model, transmitted, received, q, opts)
//	r := baa.Rate(model, transmitted, received, qNext, opts) // nats
//
// Partitioning contract (for parallel callers):
//
//   - PartialLogDenominators may be called on any disjoint sub-ranges of the
//     received alphabet (with the FULL transmitted alphabet and Q); the
//     in-order concatenation of the results equals the serial result
//     element-for-element, because each denominator depends on exactly one
//     received symbol.
//   - PartialLogAlphas and PartialRate may be called on any disjoint
//     sub-ranges of the transmitted alphabet (with the matching slice of Q
//     and the FULL log-denominator vector); alphas concatenate, rates sum.
//   - Stabilization and normalization (NormalizeAlphas) need the complete
//     alpha vector and must run only after all partial ranges are gathered.
//
// All operations are pure and safe for concurrent use; no state is shared
// across calls and the caller's Q is never mutated.
//
// See the capacity package for a ready-made sharded driver and convergence
// loop, and the channel package for concrete transition models.
package baa
