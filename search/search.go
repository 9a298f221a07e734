// Package search: binary-search family implementation.
package search

import (
	"cmp"
	"errors"
)

// NotFound is the miss sentinel: absence is an expected outcome,
// reported as a value rather than an error.
const NotFound = -1

// ErrNilSequence indicates a nil sequence was passed where a (possibly
// empty) sequence is required.
var ErrNilSequence = errors.New("search: sequence is nil")

// BinarySearch returns an index of target in the ascending sequence, or
// NotFound. When duplicates exist, which index is returned is
// unspecified; use FindFirst/FindLast for the run boundaries.
// Returns ErrNilSequence for a nil sequence.
// Complexity: O(log n) time, O(1) space.
func BinarySearch[T cmp.Ordered](seq []T, target T) (int, error) {
	if seq == nil {
		return NotFound, ErrNilSequence
	}

	left, right := 0, len(seq)-1
	for left <= right {
		mid := left + (right-left)/2 // midpoint without overflow
		switch {
		case seq[mid] == target:
			return mid, nil
		case seq[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return NotFound, nil
}

// BinarySearchRecursive is the recursive formulation of BinarySearch.
// Complexity: O(log n) time, O(log n) stack space.
func BinarySearchRecursive[T cmp.Ordered](seq []T, target T) (int, error) {
	if seq == nil {
		return NotFound, ErrNilSequence
	}

	return recurse(seq, target, 0, len(seq)-1), nil
}

// recurse narrows [left,right] until the target is found or the range
// collapses.
func recurse[T cmp.Ordered](seq []T, target T, left, right int) int {
	if left > right {
		return NotFound
	}
	mid := left + (right-left)/2
	switch {
	case seq[mid] == target:
		return mid
	case seq[mid] < target:
		return recurse(seq, target, mid+1, right)
	default:
		return recurse(seq, target, left, mid-1)
	}
}

// FindFirst returns the leftmost index of target in the ascending
// sequence, or NotFound. After recording a match it keeps searching the
// left half, so the cost stays O(log n) even across a long run.
func FindFirst[T cmp.Ordered](seq []T, target T) (int, error) {
	if seq == nil {
		return NotFound, ErrNilSequence
	}

	left, right, result := 0, len(seq)-1, NotFound
	for left <= right {
		mid := left + (right-left)/2
		switch {
		case seq[mid] == target:
			result = mid
			right = mid - 1 // continue left for an earlier occurrence
		case seq[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return result, nil
}

// FindLast returns the rightmost index of target in the ascending
// sequence, or NotFound. Mirror image of FindFirst.
func FindLast[T cmp.Ordered](seq []T, target T) (int, error) {
	if seq == nil {
		return NotFound, ErrNilSequence
	}

	left, right, result := 0, len(seq)-1, NotFound
	for left <= right {
		mid := left + (right-left)/2
		switch {
		case seq[mid] == target:
			result = mid
			left = mid + 1 // continue right for a later occurrence
		case seq[mid] < target:
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return result, nil
}

// FindInsertionPoint returns the leftmost index at which target could be
// inserted while keeping the sequence sorted (lower-bound semantics).
// The result ranges over [0, len(seq)].
// Complexity: O(log n).
func FindInsertionPoint[T cmp.Ordered](seq []T, target T) (int, error) {
	if seq == nil {
		return NotFound, ErrNilSequence
	}

	left, right := 0, len(seq)-1
	for left <= right {
		mid := left + (right-left)/2
		if seq[mid] < target {
			left = mid + 1
		} else {
			right = mid - 1
		}
	}

	return left, nil
}

// SearchRotated finds target in an ascending sequence rotated at an
// unknown pivot (e.g. [7 8 9 1 2 3]). At each step the half whose
// boundary pair is in order is internally sorted; the search descends
// into whichever half could contain the target.
// Returns NotFound on a miss, ErrNilSequence for a nil sequence.
// Complexity: O(log n).
func SearchRotated[T cmp.Ordered](seq []T, target T) (int, error) {
	if seq == nil {
		return NotFound, ErrNilSequence
	}

	left, right := 0, len(seq)-1
	for left <= right {
		mid := left + (right-left)/2
		if seq[mid] == target {
			return mid, nil
		}

		if seq[left] <= seq[mid] {
			// left half [left,mid] is sorted
			if seq[left] <= target && target < seq[mid] {
				right = mid - 1
			} else {
				left = mid + 1
			}
		} else {
			// right half [mid,right] is sorted
			if seq[mid] < target && target <= seq[right] {
				left = mid + 1
			} else {
				right = mid - 1
			}
		}
	}

	return NotFound, nil
}

// LinearSearch scans for target front to back; the O(n) baseline the
// logarithmic variants are measured against. Works on unsorted input.
func LinearSearch[T cmp.Ordered](seq []T, target T) (int, error) {
	if seq == nil {
		return NotFound, ErrNilSequence
	}

	for i, v := range seq {
		if v == target {
			return i, nil
		}
	}

	return NotFound, nil
}

// IsSorted verifies the ascending-order precondition the rest of the
// package assumes. An empty or single-element sequence is sorted.
// Returns ErrNilSequence for a nil sequence.
// Complexity: O(n).
func IsSorted[T cmp.Ordered](seq []T) (bool, error) {
	if seq == nil {
		return false, ErrNilSequence
	}

	for i := 1; i < len(seq); i++ {
		if seq[i] < seq[i-1] {
			return false, nil
		}
	}

	return true, nil
}
