package baa

import "errors"

// ErrEmptyAlphabet indicates an empty transmitted or received alphabet.
var ErrEmptyAlphabet = errors.New("baa: alphabet must be non-empty")

// ErrLengthMismatch indicates len(Q) != len(transmitted).
var ErrLengthMismatch = errors.New("baa: distribution length must match transmitted alphabet")

// ErrNegativeMass indicates a distribution entry below zero.
var ErrNegativeMass = errors.New("baa: distribution entries must be non-negative")

// ErrNotNormalized indicates a distribution whose entries do not sum to ~1.
var ErrNotNormalized = errors.New("baa: distribution must sum to 1")

// ErrZeroMassAlpha indicates that every stabilized alpha underflowed to zero,
// so no valid next distribution exists.  The step must fail rather than
// divide by zero or return NaNs.
var ErrZeroMassAlpha = errors.New("baa: stabilized alphas sum to zero")
