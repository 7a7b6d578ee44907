package twosum

import "sort"

// entry is one element of the sorted copy, remembering where it came from.
type entry struct {
	value int
	index int
}

// TwoPointer solves two-sum on a sorted copy of nums.
//
// Algorithm Outline:
//  1. Copy nums with original positions and stable-sort by value.
//  2. left = 0, right = n-1.
//  3. While left < right:
//     sum == target → done
//     sum <  target → left++
//     sum >  target → right--
//
// The input slice is never modified. Without WithOriginalIndices the
// returned Pair indexes the sorted copy.
func TwoPointer(nums []int, target int, opts ...Option) (Pair, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Sorted copy; stability keeps duplicate values in input order.
	sorted := make([]entry, len(nums))
	for i, v := range nums {
		sorted[i] = entry{value: v, index: i}
	}
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].value < sorted[b].value })

	// 2) Narrow the window from both ends.
	left, right := 0, len(sorted)-1
	for left < right {
		switch cmpSum(sorted[left].value, sorted[right].value, target) {
		case 0:
			if cfg.OriginalIndices {
				return newPair(sorted[left].index, sorted[right].index), nil
			}
			return Pair{I: left, J: right}, nil
		case -1:
			left++
		default:
			right--
		}
	}

	return Pair{}, ErrNoSolution
}

// HashMap solves two-sum in one pass, returning original indices.
//
// For each index i the complement target-nums[i] is looked up among the
// values already seen; the current value is recorded only afterwards, so
// an element never pairs with itself. A repeated value overwrites the
// index stored for it. A complement outside the int range is skipped.
func HashMap(nums []int, target int) (Pair, error) {
	seen := make(map[int]int, len(nums))
	for i, v := range nums {
		if c, ok := complement(target, v); ok {
			if j, found := seen[c]; found {
				return Pair{I: j, J: i}, nil
			}
		}
		seen[v] = i
	}

	return Pair{}, ErrNoSolution
}

// cmpSum compares a+b with target without wrapping: -1, 0 or +1.
func cmpSum(a, b, target int) int {
	sum := a + b
	switch {
	case a > 0 && b > 0 && sum < 0:
		return 1 // above MaxInt, so above any target
	case a < 0 && b < 0 && sum >= 0:
		return -1 // below MinInt
	case sum < target:
		return -1
	case sum > target:
		return 1
	}

	return 0
}

// complement returns target-v, and false when that does not fit in an int.
func complement(target, v int) (int, bool) {
	c := target - v
	if (v > 0 && c > target) || (v < 0 && c < target) {
		return 0, false
	}

	return c, true
}
