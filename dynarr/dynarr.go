// Package dynarr: growable Array implementation.
//
// The backing store is an explicit fixed-length slice plus a size counter,
// so every resize is a deliberate copy rather than an append side effect.
package dynarr

import (
	"fmt"
	"strings"
)

// growthNum/growthDen encode the 1.5× growth factor; shrinking divides
// by the same factor so repeated grow/shrink cycles stay bounded.
const (
	growthNum = 3
	growthDen = 2

	// shrinkDiv: shrink once size ≤ capacity/shrinkDiv.
	shrinkDiv = 4
)

// Array is a growable sequence of comparable elements.
// The zero Array is not ready to use; construct one with New.
type Array[T comparable] struct {
	buf  []T    // backing store; len(buf) == capacity
	size int    // number of live elements, invariant 0 ≤ size ≤ len(buf)
	gen  uint64 // generation stamp, bumped on every structural mutation
}

// New creates an empty Array with the given options.
// Returns ErrOptionViolation if an invalid Option was supplied.
// Complexity: O(1).
func New[T comparable](opts ...Option) (*Array[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Array[T]{buf: make([]T, o.capacity)}, nil
}

// Len returns the number of elements in the array.
// Complexity: O(1).
func (a *Array[T]) Len() int { return a.size }

// Cap returns the current capacity of the backing store.
// Complexity: O(1).
func (a *Array[T]) Cap() int { return len(a.buf) }

// IsEmpty reports whether the array contains no elements.
// Complexity: O(1).
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// Append adds v at the end of the array, growing the store if full.
// Complexity: O(1) amortized.
func (a *Array[T]) Append(v T) {
	a.ensureCapacity()
	a.buf[a.size] = v
	a.size++
	a.gen++
}

// InsertAt inserts v at index i, shifting the suffix right by one.
// Valid insertion indices are [0, Len()]; i == Len() appends.
// Returns ErrIndexOutOfRange otherwise.
// Complexity: O(N−i).
func (a *Array[T]) InsertAt(i int, v T) error {
	if i < 0 || i > a.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, a.size)
	}
	a.ensureCapacity()
	copy(a.buf[i+1:a.size+1], a.buf[i:a.size])
	a.buf[i] = v
	a.size++
	a.gen++

	return nil
}

// Get returns the element at index i.
// Returns ErrIndexOutOfRange when i is outside [0, Len()).
// Complexity: O(1).
func (a *Array[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.size {
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, a.size)
	}

	return a.buf[i], nil
}

// Set replaces the element at index i with v and returns the previous value.
// Set never resizes the backing store.
// Returns ErrIndexOutOfRange when i is outside [0, Len()).
// Complexity: O(1).
func (a *Array[T]) Set(i int, v T) (T, error) {
	var zero T
	if i < 0 || i >= a.size {
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, a.size)
	}
	old := a.buf[i]
	a.buf[i] = v

	return old, nil
}

// RemoveAt deletes and returns the element at index i, shifting the
// suffix left by one and shrinking the store if underused.
// Returns ErrIndexOutOfRange when i is outside [0, Len()).
// Complexity: O(N−i).
func (a *Array[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.size {
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, a.size)
	}
	removed := a.buf[i]
	copy(a.buf[i:a.size-1], a.buf[i+1:a.size])
	a.size--
	a.buf[a.size] = zero // drop the vacated reference
	a.gen++
	a.shrinkIfNeeded()

	return removed, nil
}

// RemoveValue deletes the first occurrence of v.
// Reports whether an element was removed.
// Complexity: O(N).
func (a *Array[T]) RemoveValue(v T) bool {
	i := a.IndexOf(v)
	if i == NotFound {
		return false
	}
	_, _ = a.RemoveAt(i)

	return true
}

// IndexOf returns the index of the first occurrence of v, or NotFound.
// Complexity: O(N).
func (a *Array[T]) IndexOf(v T) int {
	for i := 0; i < a.size; i++ {
		if a.buf[i] == v {
			return i
		}
	}

	return NotFound
}

// Contains reports whether the array holds at least one occurrence of v.
// Complexity: O(N).
func (a *Array[T]) Contains(v T) bool {
	return a.IndexOf(v) != NotFound
}

// Clear removes all elements and resets the capacity to DefaultCapacity
// if it had grown beyond it.
// Complexity: O(N) to drop element references.
func (a *Array[T]) Clear() {
	var zero T
	for i := 0; i < a.size; i++ {
		a.buf[i] = zero
	}
	a.size = 0
	if len(a.buf) > DefaultCapacity {
		a.buf = make([]T, DefaultCapacity)
	}
	a.gen++
}

// ToSlice returns a copy of the live elements in index order.
// Complexity: O(N).
func (a *Array[T]) ToSlice() []T {
	out := make([]T, a.size)
	copy(out, a.buf[:a.size])

	return out
}

// String renders the array as "[e0, e1, ...]".
// Presentation only; no round-trip guarantee.
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < a.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", a.buf[i])
	}
	sb.WriteByte(']')

	return sb.String()
}

// ensureCapacity grows the backing store by the growth factor when full.
func (a *Array[T]) ensureCapacity() {
	if a.size < len(a.buf) {
		return
	}
	newCap := len(a.buf) * growthNum / growthDen
	if newCap <= len(a.buf) {
		newCap = len(a.buf) + 1
	}
	a.resize(newCap)
}

// shrinkIfNeeded releases memory once the array is significantly underused.
// The capacity never drops below DefaultCapacity.
func (a *Array[T]) shrinkIfNeeded() {
	if a.size > len(a.buf)/shrinkDiv || len(a.buf) <= DefaultCapacity {
		return
	}
	newCap := len(a.buf) * growthDen / growthNum
	if newCap < DefaultCapacity {
		newCap = DefaultCapacity
	}
	a.resize(newCap)
}

// resize copies the live elements into a fresh store of the given capacity.
func (a *Array[T]) resize(newCap int) {
	next := make([]T, newCap)
	copy(next, a.buf[:a.size])
	a.buf = next
}
