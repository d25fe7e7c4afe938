package baa

// Row returns the transition probabilities out of one transmitted symbol:
// entry j is model(t, received[j]).  Pure; length == len(received).
func Row[S any](model TransitionModel[S], t S, received []S) []float64 {
	row := make([]float64, len(received))
	for j, r := range received {
		row[j] = model(t, r)
	}

	return row
}

// Col returns the transition probabilities into one received symbol:
// entry i is model(transmitted[i], r).  Pure; length == len(transmitted).
func Col[S any](model TransitionModel[S], transmitted []S, r S) []float64 {
	col := make([]float64, len(transmitted))
	for i, t := range transmitted {
		col[i] = model(t, r)
	}

	return col
}
