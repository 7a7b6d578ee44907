// Package twosum finds two distinct positions in an integer sequence
// whose values add up to a target.
//
// Two strategies are provided:
//
//   - TwoPointer: sort a copy, then narrow a [left, right] window from
//     both ends. O(N log N) time, O(N) memory for the copy. By default
//     the returned indices refer to the SORTED copy; pass
//     WithOriginalIndices() to map them back to the caller's positions.
//   - HashMap: a single pass that remembers value → index for every
//     element already seen. O(N) time, O(N) memory. Indices always refer
//     to the caller's original positions.
//
// Both strategies agree on whether a solution exists. The same element
// is never used twice.
//
// Errors:
//
//   - ErrNoSolution if no pair sums to the target (including inputs with
//     fewer than two elements).
package twosum
