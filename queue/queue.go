// Package queue: FIFO ring-buffer implementation.
package queue

import (
	"errors"
	"fmt"
	"strings"
)

// defaultCapacity is the initial ring size on first Enqueue.
const defaultCapacity = 10

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue indicates a Dequeue or Peek on an empty queue.
	ErrEmptyQueue = errors.New("queue: queue is empty")

	// ErrConcurrentModification is reported by an Iterator whose queue was
	// structurally modified after the iterator was created.
	ErrConcurrentModification = errors.New("queue: concurrent modification during iteration")
)

// Queue is a generic FIFO container over a growable ring buffer.
// The zero Queue is ready to use.
type Queue[T comparable] struct {
	buf  []T
	head int // index of the front element
	size int
	gen  uint64 // generation stamp, bumped on every structural mutation
}

// New creates an empty Queue.
// Complexity: O(1).
func New[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

// Len returns the number of elements in the queue.
// Complexity: O(1).
func (q *Queue[T]) Len() int { return q.size }

// IsEmpty reports whether the queue holds no elements.
// Complexity: O(1).
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// Enqueue adds v at the back of the queue.
// Complexity: O(1) amortized.
func (q *Queue[T]) Enqueue(v T) {
	q.grow()
	q.buf[(q.head+q.size)%len(q.buf)] = v
	q.size++
	q.gen++
}

// Dequeue removes and returns the front element.
// Returns ErrEmptyQueue when the queue is empty.
// Complexity: O(1).
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmptyQueue
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero // drop the vacated reference
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	q.gen++

	return v, nil
}

// Poll is the non-throwing Dequeue variant: it returns the front element
// and true, or the zero value and false when the queue is empty.
// Complexity: O(1).
func (q *Queue[T]) Poll() (T, bool) {
	v, err := q.Dequeue()
	if err != nil {
		var zero T
		return zero, false
	}

	return v, true
}

// PeekFront returns the front element without removing it.
// Returns ErrEmptyQueue when the queue is empty.
// Complexity: O(1).
func (q *Queue[T]) PeekFront() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmptyQueue
	}

	return q.buf[q.head], nil
}

// PeekBack returns the back element without removing it.
// Returns ErrEmptyQueue when the queue is empty.
// Complexity: O(1).
func (q *Queue[T]) PeekBack() (T, error) {
	var zero T
	if q.size == 0 {
		return zero, ErrEmptyQueue
	}

	return q.buf[(q.head+q.size-1)%len(q.buf)], nil
}

// Contains reports whether the queue holds at least one occurrence of v.
// Complexity: O(N).
func (q *Queue[T]) Contains(v T) bool {
	for i := 0; i < q.size; i++ {
		if q.buf[(q.head+i)%len(q.buf)] == v {
			return true
		}
	}

	return false
}

// Clear removes all elements and releases the ring.
// Complexity: O(1).
func (q *Queue[T]) Clear() {
	q.buf = nil
	q.head = 0
	q.size = 0
	q.gen++
}

// ToSlice returns the elements front to back.
// Complexity: O(N).
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, q.size)
	for i := 0; i < q.size; i++ {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}

	return out
}

// String renders the queue front-first as "front -> [e0, e1, ...]".
// Presentation only; no round-trip guarantee.
func (q *Queue[T]) String() string {
	var sb strings.Builder
	sb.WriteString("front -> [")
	for i := 0; i < q.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", q.buf[(q.head+i)%len(q.buf)])
	}
	sb.WriteByte(']')

	return sb.String()
}

// grow doubles the ring by a 1.5 factor when full, unwrapping the
// elements into index order so head starts at zero again.
func (q *Queue[T]) grow() {
	if q.size < len(q.buf) {
		return
	}
	newCap := len(q.buf) * 3 / 2
	if newCap < defaultCapacity {
		newCap = defaultCapacity
	}
	next := make([]T, newCap)
	for i := 0; i < q.size; i++ {
		next[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = next
	q.head = 0
}
