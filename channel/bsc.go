package channel

import (
	"math"
	"math/bits"

	"github.com/capacitylab/blahut/baa"
)

// BSC returns the transition model of a memoryless binary symmetric channel
// with crossover probability p, extended bitwise to equal-length codewords:
//
//	P(y|x) = p^d · (1−p)^(n−d),  d = Hamming distance(x, y)
//
// Codewords of different lengths never transition into each other (the
// channel neither inserts nor deletes bits), so their probability is 0.
//
// For 1-bit codewords this is the textbook BSC whose capacity is 1 − H(p)
// bits, achieved by the uniform input distribution — the standard sanity
// check for a BAA implementation.
func BSC(p float64) baa.TransitionModel[Codeword] {
	return func(x, y Codeword) float64 {
		if x.length != y.length {
			return 0
		}
		d := bits.OnesCount64(x.bits ^ y.bits)

		return math.Pow(p, float64(d)) * math.Pow(1-p, float64(x.length-d))
	}
}
