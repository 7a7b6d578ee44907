package subarray

import "errors"

// ErrEmptyInput indicates the input sequence has no elements, so no
// non-empty run exists.
var ErrEmptyInput = errors.New("subarray: input sequence must be non-empty")

// Span describes the winning contiguous run.
//
//   - Start: index of the first element of the run.
//   - End  : index of the last element of the run (inclusive).
//   - Sum  : sum of nums[Start..End].
type Span struct {
	Start int
	End   int
	Sum   int
}

// Len returns the number of elements in the run.
func (s Span) Len() int { return s.End - s.Start + 1 }

// Step is the state observed after evaluating one element.
// Index 0 only seeds the scan and is never reported.
type Step struct {
	Index   int // position of the evaluated element
	Value   int // nums[Index]
	Running int // running sum of the run ending at Index
	Best    int // best sum seen up to and including Index
}

// Options configures the scan.
type Options struct {
	// OnStep is called once per evaluated element (index ≥ 1).
	OnStep func(Step)
}

// Option represents a functional option for configuring the scan.
type Option func(*Options)

// DefaultOptions returns Options with a no-op OnStep hook.
func DefaultOptions() Options {
	return Options{
		OnStep: func(Step) {},
	}
}

// WithOnStep registers a hook invoked after each element is evaluated.
// A nil fn keeps the no-op default.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
