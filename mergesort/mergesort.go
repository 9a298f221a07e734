// Package mergesort: stable merge sort implementation.
package mergesort

import (
	"cmp"
	"errors"
)

// Sentinel errors for sort invocation.
var (
	// ErrNilSequence indicates a nil sequence was passed.
	ErrNilSequence = errors.New("mergesort: sequence is nil")

	// ErrNilLess indicates a nil comparison function was passed to SortFunc.
	ErrNilLess = errors.New("mergesort: less function is nil")
)

// Sort sorts seq ascending, in place and stable.
// A nil sequence returns ErrNilSequence; length ≤ 1 is a no-op.
// Complexity: O(n log n) time, O(n) auxiliary space.
func Sort[T cmp.Ordered](seq []T) error {
	if seq == nil {
		return ErrNilSequence
	}

	return SortFunc(seq, func(a, b T) bool { return a < b })
}

// SortFunc sorts seq in place using the strict ordering reported by
// less; equal elements (neither less than the other) keep their input
// order. A nil sequence returns ErrNilSequence, a nil less ErrNilLess.
// Complexity: O(n log n) time, O(n) auxiliary space.
func SortFunc[T any](seq []T, less func(a, b T) bool) error {
	if seq == nil {
		return ErrNilSequence
	}
	if less == nil {
		return ErrNilLess
	}
	if len(seq) <= 1 {
		return nil
	}

	// one buffer for the whole call; every merge reuses it
	aux := make([]T, len(seq))
	sortRange(seq, aux, 0, len(seq)-1, less)

	return nil
}

// SortBottomUp sorts seq ascending with the iterative variant: it merges
// adjacent runs of width 1, 2, 4, ... until one run spans the sequence.
// Output is identical to Sort, including stability.
// Complexity: O(n log n) time, O(n) auxiliary space, O(1) stack.
func SortBottomUp[T cmp.Ordered](seq []T) error {
	if seq == nil {
		return ErrNilSequence
	}
	n := len(seq)
	if n <= 1 {
		return nil
	}

	less := func(a, b T) bool { return a < b }
	aux := make([]T, n)
	for width := 1; width < n; width *= 2 {
		for left := 0; left < n-width; left += 2 * width {
			mid := left + width - 1
			right := min(left+2*width-1, n-1)
			merge(seq, aux, left, mid, right, less)
		}
	}

	return nil
}

// sortRange recursively halves [left,right], sorts both halves, and
// merges them.
func sortRange[T any](seq, aux []T, left, right int, less func(a, b T) bool) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	sortRange(seq, aux, left, mid, less)
	sortRange(seq, aux, mid+1, right, less)
	merge(seq, aux, left, mid, right, less)
}

// merge combines the sorted halves [left,mid] and [mid+1,right],
// repeatedly taking the lesser head. Ties take the left element, which
// preserves the input order of equal keys.
func merge[T any](seq, aux []T, left, mid, right int, less func(a, b T) bool) {
	copy(aux[left:right+1], seq[left:right+1])

	i, j := left, mid+1
	for k := left; k <= right; k++ {
		switch {
		case i > mid:
			seq[k] = aux[j]
			j++
		case j > right:
			seq[k] = aux[i]
			i++
		case less(aux[j], aux[i]):
			seq[k] = aux[j]
			j++
		default:
			seq[k] = aux[i]
			i++
		}
	}
}
