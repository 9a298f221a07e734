// Package sllist: singly linked List implementation.
package sllist

import (
	"errors"
	"fmt"
	"strings"
)

// NotFound is returned by IndexOf when the value is absent.
const NotFound = -1

// Sentinel errors for list operations.
var (
	// ErrEmptyList indicates a pop or peek on an empty list.
	ErrEmptyList = errors.New("sllist: list is empty")

	// ErrIndexOutOfRange indicates an index outside the valid bound for
	// the operation (read bound [0,N); insertion bound [0,N]).
	ErrIndexOutOfRange = errors.New("sllist: index out of range")

	// ErrConcurrentModification is reported by an Iterator whose list was
	// structurally modified after the iterator was created.
	ErrConcurrentModification = errors.New("sllist: concurrent modification during iteration")
)

// node is a single chain link: one value, one successor.
type node[T any] struct {
	val  T
	next *node[T]
}

// List is a singly linked sequence of comparable elements.
// The list tracks its size incrementally; it is never recomputed.
type List[T comparable] struct {
	head *node[T]
	size int
	gen  uint64 // generation stamp, bumped on every structural mutation
}

// New creates an empty List.
// Complexity: O(1).
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in the list.
// Complexity: O(1).
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list contains no elements.
// Complexity: O(1).
func (l *List[T]) IsEmpty() bool { return l.head == nil }

// PushFront inserts v at the head of the list.
// Complexity: O(1).
func (l *List[T]) PushFront(v T) {
	l.head = &node[T]{val: v, next: l.head}
	l.size++
	l.gen++
}

// PushBack appends v at the tail of the list.
// Complexity: O(N) — walks the chain to the last node.
func (l *List[T]) PushBack(v T) {
	n := &node[T]{val: v}
	if l.head == nil {
		l.head = n
	} else {
		cur := l.head
		for cur.next != nil {
			cur = cur.next
		}
		cur.next = n
	}
	l.size++
	l.gen++
}

// InsertAt inserts v at index i; i == Len() appends.
// Returns ErrIndexOutOfRange when i is outside [0, Len()].
// Complexity: O(N).
func (l *List[T]) InsertAt(i int, v T) error {
	if i < 0 || i > l.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, l.size)
	}
	if i == 0 {
		l.PushFront(v)
		return nil
	}
	prev := l.nodeAt(i - 1)
	prev.next = &node[T]{val: v, next: prev.next}
	l.size++
	l.gen++

	return nil
}

// PopFront removes and returns the head element.
// Returns ErrEmptyList when the list is empty.
// Complexity: O(1).
func (l *List[T]) PopFront() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}
	v := l.head.val
	l.head = l.head.next
	l.size--
	l.gen++

	return v, nil
}

// PopBack removes and returns the tail element.
// Returns ErrEmptyList when the list is empty.
// Complexity: O(N) — walks to the penultimate node.
func (l *List[T]) PopBack() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}
	if l.head.next == nil {
		v := l.head.val
		l.head = nil
		l.size--
		l.gen++

		return v, nil
	}
	cur := l.head
	for cur.next.next != nil {
		cur = cur.next
	}
	v := cur.next.val
	cur.next = nil
	l.size--
	l.gen++

	return v, nil
}

// DeleteValue removes the first occurrence of v, scanning head to tail.
// Reports whether an element was removed.
// Complexity: O(N).
func (l *List[T]) DeleteValue(v T) bool {
	if l.head == nil {
		return false
	}
	if l.head.val == v {
		l.head = l.head.next
		l.size--
		l.gen++

		return true
	}
	for cur := l.head; cur.next != nil; cur = cur.next {
		if cur.next.val == v {
			cur.next = cur.next.next
			l.size--
			l.gen++

			return true
		}
	}

	return false
}

// DeleteAt removes and returns the element at index i.
// Returns ErrIndexOutOfRange when i is outside [0, Len()).
// Complexity: O(N).
func (l *List[T]) DeleteAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, l.size)
	}
	if i == 0 {
		return l.PopFront()
	}
	prev := l.nodeAt(i - 1)
	v := prev.next.val
	prev.next = prev.next.next
	l.size--
	l.gen++

	return v, nil
}

// Get returns the element at index i.
// Returns ErrIndexOutOfRange when i is outside [0, Len()).
// Complexity: O(N).
func (l *List[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, l.size)
	}

	return l.nodeAt(i).val, nil
}

// Set replaces the element at index i with v and returns the previous value.
// Returns ErrIndexOutOfRange when i is outside [0, Len()).
// Complexity: O(N).
func (l *List[T]) Set(i int, v T) (T, error) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, l.size)
	}
	n := l.nodeAt(i)
	old := n.val
	n.val = v

	return old, nil
}

// IndexOf returns the index of the first occurrence of v, or NotFound.
// Complexity: O(N).
func (l *List[T]) IndexOf(v T) int {
	i := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.val == v {
			return i
		}
		i++
	}

	return NotFound
}

// Contains reports whether the list holds at least one occurrence of v.
// Complexity: O(N).
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) != NotFound
}

// Front returns the head element without removing it.
// Returns ErrEmptyList when the list is empty.
// Complexity: O(1).
func (l *List[T]) Front() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}

	return l.head.val, nil
}

// Back returns the tail element without removing it.
// Returns ErrEmptyList when the list is empty.
// Complexity: O(N).
func (l *List[T]) Back() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}
	cur := l.head
	for cur.next != nil {
		cur = cur.next
	}

	return cur.val, nil
}

// Reverse reverses the list in place with iterative pointer rewiring:
// a prev/cur/next walk that flips one successor link per step.
// Complexity: O(N) time, O(1) extra space.
func (l *List[T]) Reverse() {
	var prev *node[T]
	cur := l.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	l.head = prev
	l.gen++
}

// Clear removes all elements.
// Complexity: O(1) — the chain is released as a whole.
func (l *List[T]) Clear() {
	l.head = nil
	l.size = 0
	l.gen++
}

// ToSlice returns the elements head to tail.
// Complexity: O(N).
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.val)
	}

	return out
}

// String renders the list as "head -> ... -> nil".
// Presentation only; no round-trip guarantee.
func (l *List[T]) String() string {
	var sb strings.Builder
	for cur := l.head; cur != nil; cur = cur.next {
		fmt.Fprintf(&sb, "%v -> ", cur.val)
	}
	sb.WriteString("nil")

	return sb.String()
}

// nodeAt returns the node at index i; the caller must have checked bounds.
func (l *List[T]) nodeAt(i int) *node[T] {
	cur := l.head
	for ; i > 0; i-- {
		cur = cur.next
	}

	return cur
}
