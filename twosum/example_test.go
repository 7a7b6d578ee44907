package twosum_test

import (
	"fmt"

	"github.com/katalvlaran/kata/twosum"
)

// ExampleHashMap finds the pair in a single pass.
func ExampleHashMap() {
	p, err := twosum.HashMap([]int{2, 7, 11, 15}, 9)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println([]int{p.I, p.J})
	// Output:
	// [0 1]
}

// ExampleTwoPointer contrasts sorted-order and original indices.
func ExampleTwoPointer() {
	nums := []int{3, 2, 4}
	sorted, _ := twosum.TwoPointer(nums, 6)
	orig, _ := twosum.TwoPointer(nums, 6, twosum.WithOriginalIndices())
	fmt.Println("sorted:", sorted)
	fmt.Println("original:", orig)
	// Output:
	// sorted: {0 2}
	// original: {1 2}
}
