package twosum

import "errors"

// ErrNoSolution indicates that no two distinct elements sum to the target.
var ErrNoSolution = errors.New("twosum: no pair sums to target")

// Pair holds two distinct indices with I < J.
type Pair struct {
	I, J int
}

// Options configures TwoPointer.
type Options struct {
	// OriginalIndices maps the sorted-order result back to positions in
	// the caller's slice.
	OriginalIndices bool
}

// Option represents a functional option for configuring TwoPointer.
type Option func(*Options)

// DefaultOptions returns Options that report sorted-order indices.
func DefaultOptions() Options {
	return Options{OriginalIndices: false}
}

// WithOriginalIndices makes TwoPointer report indices into the input
// slice instead of the sorted copy.
func WithOriginalIndices() Option {
	return func(o *Options) {
		o.OriginalIndices = true
	}
}

// newPair orders a and b ascending.
func newPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}

	return Pair{I: a, J: b}
}
