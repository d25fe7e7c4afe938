package channel

import (
	"errors"
	"fmt"
	"strings"
)

// MaxBits is the longest representable codeword: bits are packed into a
// single uint64 with one bit reserved so lengths stay comparable as ints.
const MaxBits = 63

// maxEnumerate caps enumerated alphabet lengths: 2^30 codewords is already
// far past what fits in memory alongside the probability vectors.
const maxEnumerate = 30

// ErrBadLength indicates a codeword or alphabet length outside [0, MaxBits].
var ErrBadLength = errors.New("channel: codeword length must be in [0, 63]")

// ErrAlphabetTooLarge indicates an enumeration request over 2^30 codewords.
var ErrAlphabetTooLarge = errors.New("channel: alphabet too large to enumerate")

// Codeword is an immutable bit string of up to MaxBits bits.  The zero value
// is the empty codeword.  Codewords are compared by value; two codewords are
// equal iff they have the same length and the same bits.
type Codeword struct {
	bits   uint64
	length int
}

// NewCodeword builds a codeword of the given length from the low `length`
// bits of v (bit 0 of v becomes the rightmost position).
func NewCodeword(v uint64, length int) (Codeword, error) {
	if length < 0 || length > MaxBits {
		return Codeword{}, fmt.Errorf("%w: %d", ErrBadLength, length)
	}
	mask := uint64(1)<<uint(length) - 1

	return Codeword{bits: v & mask, length: length}, nil
}

// Len returns the number of bits in the codeword.
func (c Codeword) Len() int { return c.length }

// Bit returns the bit at position i, 0 = leftmost.  i must be in [0, Len).
func (c Codeword) Bit(i int) byte {
	return byte(c.bits >> uint(c.length-1-i) & 1)
}

// String renders the codeword as a '0'/'1' string, leftmost bit first.
func (c Codeword) String() string {
	var sb strings.Builder
	sb.Grow(c.length)
	for i := 0; i < c.length; i++ {
		sb.WriteByte('0' + c.Bit(i))
	}

	return sb.String()
}

// Enumerate returns all 2^n codewords of length n, in binary value order
// (00…0 first).  This ordering is what aligns a distribution vector with
// the alphabet, so it is part of the contract.
func Enumerate(n int) ([]Codeword, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, n)
	}
	if n > maxEnumerate {
		return nil, fmt.Errorf("%w: 2^%d codewords", ErrAlphabetTooLarge, n)
	}
	words := make([]Codeword, 0, 1<<uint(n))
	for v := uint64(0); v < 1<<uint(n); v++ {
		words = append(words, Codeword{bits: v, length: n})
	}

	return words, nil
}

// EnumerateUpTo returns all codewords of length 0 through n inclusive —
// 2^(n+1)−1 in total — shorter lengths first, binary value order within a
// length.  This is the natural output alphabet of a deletion channel with
// n-bit inputs.
func EnumerateUpTo(n int) ([]Codeword, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, n)
	}
	if n > maxEnumerate {
		return nil, fmt.Errorf("%w: 2^%d codewords", ErrAlphabetTooLarge, n+1)
	}
	words := make([]Codeword, 0, 1<<uint(n+1)-1)
	for length := 0; length <= n; length++ {
		for v := uint64(0); v < 1<<uint(length); v++ {
			words = append(words, Codeword{bits: v, length: length})
		}
	}

	return words, nil
}
