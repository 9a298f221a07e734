// Package search implements the binary-search family over sequences
// sorted ascending, generic over any ordered element type.
//
// What
//
//   - BinarySearch / BinarySearchRecursive: any matching index.
//   - FindFirst / FindLast: leftmost / rightmost index of a run of equal
//     values, still O(log n) — the search continues into the matching
//     half after recording a candidate.
//   - FindInsertionPoint: lower-bound semantics, the leftmost index where
//     the target keeps the sequence sorted.
//   - SearchRotated: an ascending sequence rotated at an unknown pivot;
//     each step identifies the internally sorted half by comparing the
//     left boundary to the midpoint.
//   - LinearSearch for comparison, IsSorted to verify the precondition.
//
// Precondition
//
//	Except for IsSorted, every function assumes seq is sorted ascending
//	(SearchRotated: ascending then rotated). The precondition is not
//	checked; behavior on unsorted input is undefined.
//
// Complexity: O(log n) throughout, O(n) for LinearSearch/IsSorted.
// The recursive variant uses O(log n) stack; the rest are O(1) space.
//
// Usage
//
//	idx, err := search.BinarySearch([]int{1, 3, 5, 7}, 5) // 2
//	if idx == search.NotFound { ... }                     // miss, not an error
//
// Errors
//
//   - ErrNilSequence a nil sequence reference (an empty one is fine and
//     simply yields NotFound).
package search
