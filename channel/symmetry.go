package channel

import (
	"errors"
	"fmt"
)

// ErrOddAlphabet indicates a symmetry reduction over an odd-sized alphabet:
// stride-2 reduction assumes the symbols pair up.
var ErrOddAlphabet = errors.New("channel: symmetry reduction requires an even-sized alphabet")

// EvenIndices returns the codewords at even positions of words — the reduced
// transmitted alphabet for channels where consecutive pairs are equivalent
// under a symmetry (for binary-ordered alphabets, x and its complement-pair
// sit adjacently, so the even elements are one representative per pair).
//
// Running rate or step computations over the reduced alphabet halves the
// work; ReducedToFull recovers the position of each representative in the
// original alphabet.  The baa contracts are untouched: this only changes
// which symbols are iterated, not what any symbol contributes.
func EvenIndices(words []Codeword) ([]Codeword, error) {
	if len(words)%2 != 0 {
		return nil, fmt.Errorf("%w: size %d", ErrOddAlphabet, len(words))
	}
	reduced := make([]Codeword, 0, len(words)/2)
	for i := 0; i < len(words); i += 2 {
		reduced = append(reduced, words[i])
	}

	return reduced, nil
}

// ReducedToFull maps an index into a reduced (stride-2) alphabet back to the
// index of the same codeword in the full alphabet.
func ReducedToFull(i int) int { return 2 * i }
