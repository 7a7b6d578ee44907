// Package subarray finds the maximum-sum contiguous run of an integer
// sequence using Kadane's algorithm.
//
// 🚀 What is Kadane's algorithm?
//
//	A single left-to-right scan keeps a running sum of the current run.
//	At every element it decides whether extending the run beats starting
//	a fresh run at that element, and records the best sum seen so far.
//	Typical uses:
//	  • best window of daily sales or profit
//	  • strongest streak in a signal or score series
//	  • building block for 2D max-submatrix search
//
// ✨ Key features:
//   - MaxSum returns only the best sum
//   - Max also returns the inclusive [Start, End] bounds of the winning run
//   - WithOnStep hook observes every decision (index, value, running, best)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/kata/subarray"
//
//	sum, err := subarray.MaxSum([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4})
//	// sum == 6, from the run [4, -1, 2, 1]
//
//	span, err := subarray.Max(nums, subarray.WithOnStep(func(s subarray.Step) {
//	    log.Debug("step", "i", s.Index, "running", s.Running, "best", s.Best)
//	}))
//
// Performance:
//
//   - Time:   O(N)
//   - Memory: O(1)
//
// Errors:
//
//   - ErrEmptyInput if the sequence has no elements.
package subarray
