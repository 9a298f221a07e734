// Package sllist: fail-fast iteration over the List.
package sllist

import "fmt"

// Iterator walks the list head to tail, one element at a time.
//
// It captures the list's generation stamp at creation; any structural
// mutation afterwards makes the next call to Next fail with
// ErrConcurrentModification. Iterators are one-shot: restarting requires
// re-acquiring a fresh iterator from the list.
type Iterator[T comparable] struct {
	list *List[T]
	next *node[T]
	gen  uint64
	cur  T
	err  error
}

// Iterator returns a forward iterator positioned before the head.
// Complexity: O(1) per step.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{list: l, next: l.head, gen: l.gen}
}

// Next advances the iterator. It returns false when the iteration is
// exhausted or a concurrent modification was detected; the two cases are
// distinguished by Err.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.gen != it.list.gen {
		it.err = fmt.Errorf("%w: list changed underneath the iterator", ErrConcurrentModification)
		return false
	}
	if it.next == nil {
		return false
	}
	it.cur = it.next.val
	it.next = it.next.next

	return true
}

// Value returns the element produced by the last successful Next.
func (it *Iterator[T]) Value() T { return it.cur }

// Err returns ErrConcurrentModification if the list was structurally
// modified during iteration, nil otherwise.
func (it *Iterator[T]) Err() error { return it.err }
