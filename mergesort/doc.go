// Package mergesort implements stable merge sort with a guaranteed
// O(n log n) bound in every case.
//
// What
//
//   - Sort: in-place top-down merge sort for ordered element types.
//   - SortFunc: the same algorithm over a caller-supplied less function,
//     for element types without a natural order.
//   - SortBottomUp: the iterative variant merging runs of doubling size;
//     identical output, no recursion.
//
// Stability
//
//	Merging always prefers the left half on ties, so equal elements keep
//	their relative input order. That single comparison rule is what makes
//	the sort stable.
//
// Complexity
//
//   - Time: O(n log n) best, average, and worst case.
//   - Space: O(n) — one auxiliary buffer allocated per top-level call
//     and reused by every merge, not one per recursion level.
//
// Usage
//
//	seq := []int{5, 2, 9, 1, 5, 6}
//	if err := mergesort.Sort(seq); err != nil { ... }
//	// seq == [1 2 5 5 6 9]
//
//	type pair struct{ key, ord int }
//	_ = mergesort.SortFunc(pairs, func(a, b pair) bool { return a.key < b.key })
//
// Errors
//
//   - ErrNilSequence a nil sequence reference; an empty or single-element
//     sequence is a no-op, not an error.
//   - ErrNilLess     a nil comparison function passed to SortFunc.
package mergesort
