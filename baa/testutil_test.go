package baa_test

import (
	"math/rand"

	"github.com/capacitylab/blahut/baa"
)

// bsc is a 1-bit binary symmetric channel over int symbols {0,1} with
// crossover probability p.
func bsc(p float64) baa.TransitionModel[int] {
	return func(t, r int) float64 {
		if t == r {
			return 1 - p
		}

		return p
	}
}

// symbols returns the index alphabet [0, n).
func symbols(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}

	return s
}

// randomChannel builds a random row-stochastic nI×nJ transition table and
// returns it as a model over int symbols.
func randomChannel(rng *rand.Rand, nI, nJ int) baa.TransitionModel[int] {
	table := make([][]float64, nI)
	for i := range table {
		row := make([]float64, nJ)
		sum := 0.0
		for j := range row {
			row[j] = rng.Float64() + 1e-3
			sum += row[j]
		}
		for j := range row {
			row[j] /= sum
		}
		table[i] = row
	}

	return func(t, r int) float64 { return table[t][r] }
}

// randomDistribution returns a random strictly positive distribution of
// length n.
func randomDistribution(rng *rand.Rand, n int) []float64 {
	q := make([]float64, n)
	sum := 0.0
	for i := range q {
		q[i] = rng.Float64() + 1e-3
		sum += q[i]
	}
	for i := range q {
		q[i] /= sum
	}

	return q
}
