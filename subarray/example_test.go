package subarray_test

import (
	"fmt"

	"github.com/katalvlaran/kata/subarray"
)

// ExampleMaxSum shows the classic daily-sales input.
//
// Scenario:
//
//	Daily units sold, with returns recorded as negatives:
//	  [-2, 1, -3, 4, -1, 2, 1, -5, 4]
//
// The best streak is [4, -1, 2, 1] with a total of 6.
func ExampleMaxSum() {
	sum, err := subarray.MaxSum([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sum)
	// Output:
	// 6
}

// ExampleMax reports the bounds of the winning run.
func ExampleMax() {
	nums := []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}
	span, _ := subarray.Max(nums)
	fmt.Printf("sum=%d run=%v\n", span.Sum, nums[span.Start:span.End+1])
	// Output:
	// sum=6 run=[4 -1 2 1]
}

// ExampleWithOnStep traces each extend-or-restart decision.
func ExampleWithOnStep() {
	_, _ = subarray.Max([]int{5, 4, -1, 7, 8}, subarray.WithOnStep(func(s subarray.Step) {
		fmt.Printf("value=%d running=%d best=%d\n", s.Value, s.Running, s.Best)
	}))
	// Output:
	// value=4 running=9 best=9
	// value=-1 running=8 best=9
	// value=7 running=15 best=15
	// value=8 running=23 best=23
}
