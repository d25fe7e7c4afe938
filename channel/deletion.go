package channel

import (
	"math"

	"github.com/capacitylab/blahut/baa"
)

// Deletion returns the transition model of an iid bit-deletion channel: each
// transmitted bit is independently deleted with probability p, and the
// surviving bits are received in order with no marker of where deletions
// occurred.
//
//	P(y|x) = N(x,y) · p^(|x|−|y|) · (1−p)^|y|
//
// where N(x,y) counts the distinct ways y embeds into x as a subsequence —
// the receiver cannot tell which copies of a repeated pattern survived, so
// every embedding contributes.  P is 0 when |y| > |x|.
//
// Summed over all received codewords of length ≤ |x| (EnumerateUpTo), the
// probabilities total exactly 1.
//
// The deletion channel has no known closed-form capacity; pairing this model
// with the baa core and a large up-to output alphabet is the workload this
// library exists for.
func Deletion(p float64) baa.TransitionModel[Codeword] {
	return func(x, y Codeword) float64 {
		if y.length > x.length {
			return 0
		}
		n := embeddings(x, y)
		if n == 0 {
			return 0
		}

		return float64(n) * math.Pow(p, float64(x.length-y.length)) * math.Pow(1-p, float64(y.length))
	}
}

// embeddings counts occurrences of y in x as a subsequence, by the standard
// prefix DP: dp[k] = number of ways the first k bits of y embed into the
// prefix of x scanned so far.  Iterating k downward lets one row suffice.
func embeddings(x, y Codeword) uint64 {
	dp := make([]uint64, y.length+1)
	dp[0] = 1
	for i := 0; i < x.length; i++ {
		b := x.Bit(i)
		for k := y.length; k >= 1; k-- {
			if y.Bit(k-1) == b {
				dp[k] += dp[k-1]
			}
		}
	}

	return dp[y.length]
}
