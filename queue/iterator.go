// Package queue: fail-fast iteration over the Queue.
package queue

import "fmt"

// Iterator walks the queue front to back, one element at a time.
//
// It captures the queue's generation stamp at creation; any structural
// mutation afterwards makes the next call to Next fail with
// ErrConcurrentModification. Iterators are one-shot.
type Iterator[T comparable] struct {
	q   *Queue[T]
	pos int
	gen uint64
	cur T
	err error
}

// Iterator returns a forward iterator positioned before the front.
// Complexity: O(1) per step.
func (q *Queue[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{q: q, gen: q.gen}
}

// Next advances the iterator. It returns false when the iteration is
// exhausted or a concurrent modification was detected; the two cases are
// distinguished by Err.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.gen != it.q.gen {
		it.err = fmt.Errorf("%w: queue changed underneath the iterator", ErrConcurrentModification)
		return false
	}
	if it.pos >= it.q.size {
		return false
	}
	it.cur = it.q.buf[(it.q.head+it.pos)%len(it.q.buf)]
	it.pos++

	return true
}

// Value returns the element produced by the last successful Next.
func (it *Iterator[T]) Value() T { return it.cur }

// Err returns ErrConcurrentModification if the queue was structurally
// modified during iteration, nil otherwise.
func (it *Iterator[T]) Err() error { return it.err }
