// Package channel provides concrete bit-codeword alphabets and transition
// models for the Blahut–Arimoto core in package baa.
//
// 🚀 What lives here?
//
//	The baa core is generic over symbols and channels; this package supplies
//	the usual concrete pieces for binary channels:
//	  • Codeword — an immutable bit string (up to 63 bits)
//	  • Enumerate / EnumerateUpTo — ordered codeword alphabets
//	  • BSC — the memoryless binary symmetric channel
//	  • Deletion — the iid bit-deletion channel (no closed-form capacity;
//	    the reason BAA earns its keep)
//	  • EvenIndices / ReducedToFull — stride-2 symmetry reduction of a
//	    transmitted alphabet
//
// ⚙️ Usage:
//
//	transmitted, _ := channel.Enumerate(4)      // all 4-bit inputs
//	received, _ := channel.EnumerateUpTo(4)     // outputs of length ≤ 4
//	model := channel.Deletion(0.1)              // each bit deleted w.p. 0.1
//	q, err := baa.Step(model, transmitted, received, baa.Uniform(len(transmitted)), baa.DefaultOptions())
//
// Symmetry reduction:
//
//	When consecutive codeword pairs are equivalent under a channel symmetry
//	(e.g. complement-invariant channels enumerated in binary order), the even
//	elements alone can stand in for the transmitted alphabet, halving the
//	work of rate and step computations.  EvenIndices performs the reduction
//	and ReducedToFull maps reduced indices back; the baa contracts are
//	unchanged — this is strictly a caller-level transform.
package channel
