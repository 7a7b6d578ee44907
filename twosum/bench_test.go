package twosum_test

import (
	"testing"

	"github.com/katalvlaran/kata/twosum"
)

// worstCase places the only valid pair at the two far ends.
func worstCase(n int) ([]int, int) {
	nums := make([]int, n)
	for i := range nums {
		nums[i] = i * 2
	}
	nums[n-1] = 1

	return nums, 1 + nums[n-2]
}

// BenchmarkHashMap_10K benchmarks the single-pass solver.
func BenchmarkHashMap_10K(b *testing.B) {
	nums, target := worstCase(10_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = twosum.HashMap(nums, target)
	}
}

// BenchmarkTwoPointer_10K benchmarks the sort-then-narrow solver.
func BenchmarkTwoPointer_10K(b *testing.B) {
	nums, target := worstCase(10_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = twosum.TwoPointer(nums, target)
	}
}
