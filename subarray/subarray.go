package subarray

// Max returns the contiguous, non-empty run of nums with the largest sum.
//
// Algorithm Outline:
//  1. Seed running = best = nums[0], run start = 0.
//  2. For i = 1..n-1:
//     running = running + nums[i]
//     if running < nums[i]: restart the run at i (running = nums[i])
//     if running > best:    record [start, i] as the new best run
//  3. Return the best run.
//
// Ties keep the earliest best run, because best only moves on a strict
// improvement.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(1)
//
// Errors:
//   - ErrEmptyInput if len(nums) == 0.
func Max(nums []int, opts ...Option) (Span, error) {
	if len(nums) == 0 {
		return Span{}, ErrEmptyInput
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Seed from the first element.
	best := Span{Start: 0, End: 0, Sum: nums[0]}
	running, start := nums[0], 0

	// 2) Extend or restart at every following element.
	for i := 1; i < len(nums); i++ {
		v := nums[i]
		running += v
		if running < v {
			running, start = v, i
		}
		if running > best.Sum {
			best = Span{Start: start, End: i, Sum: running}
		}
		cfg.OnStep(Step{Index: i, Value: v, Running: running, Best: best.Sum})
	}

	return best, nil
}

// MaxSum returns only the largest sum of any contiguous, non-empty run.
func MaxSum(nums []int, opts ...Option) (int, error) {
	span, err := Max(nums, opts...)
	if err != nil {
		return 0, err
	}

	return span.Sum, nil
}
