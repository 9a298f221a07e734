// Package dynarr: fail-fast iteration over the Array.
package dynarr

import "fmt"

// Iterator walks the array one element at a time.
//
// It captures the array's generation stamp at creation; any structural
// mutation of the array afterwards makes the next call to Next fail with
// ErrConcurrentModification. Iterators are one-shot and not restartable.
//
//	it := arr.Iterator()
//	for it.Next() {
//	    v := it.Value()
//	    ...
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator[T comparable] struct {
	arr  *Array[T]
	idx  int
	step int // +1 forward, -1 reverse
	gen  uint64
	cur  T
	err  error
}

// Iterator returns a forward iterator (index 0 → Len()-1).
// Complexity: O(1) per step.
func (a *Array[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{arr: a, idx: 0, step: 1, gen: a.gen}
}

// ReverseIterator returns a backward iterator (index Len()-1 → 0).
// Complexity: O(1) per step.
func (a *Array[T]) ReverseIterator() *Iterator[T] {
	return &Iterator[T]{arr: a, idx: a.size - 1, step: -1, gen: a.gen}
}

// Next advances the iterator. It returns false when the iteration is
// exhausted or a concurrent modification was detected; the two cases are
// distinguished by Err.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.gen != it.arr.gen {
		it.err = fmt.Errorf("%w: array changed underneath the iterator", ErrConcurrentModification)
		return false
	}
	if it.idx < 0 || it.idx >= it.arr.size {
		return false
	}
	it.cur = it.arr.buf[it.idx]
	it.idx += it.step

	return true
}

// Value returns the element produced by the last successful Next.
func (it *Iterator[T]) Value() T { return it.cur }

// Err returns ErrConcurrentModification if the array was structurally
// modified during iteration, nil otherwise.
func (it *Iterator[T]) Err() error { return it.err }
