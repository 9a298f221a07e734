// Package stack: LIFO adapter over dynarr.Array.
package stack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lvlup/dsakit/dynarr"
)

// NotFound is returned by Search when the value is absent.
const NotFound = -1

// ErrEmptyStack indicates a Pop or Peek on an empty stack.
var ErrEmptyStack = errors.New("stack: stack is empty")

// Stack is a generic LIFO container backed by a dynarr.Array.
// The last array index is the top of the stack.
type Stack[T comparable] struct {
	arr *dynarr.Array[T]
}

// New creates an empty Stack with the given dynarr options
// (e.g. dynarr.WithCapacity for a pre-sized backing store).
// Returns dynarr.ErrOptionViolation for an invalid option.
// Complexity: O(1).
func New[T comparable](opts ...dynarr.Option) (*Stack[T], error) {
	arr, err := dynarr.New[T](opts...)
	if err != nil {
		return nil, err
	}

	return &Stack[T]{arr: arr}, nil
}

// Len returns the number of elements on the stack.
// Complexity: O(1).
func (s *Stack[T]) Len() int { return s.arr.Len() }

// IsEmpty reports whether the stack holds no elements.
// Complexity: O(1).
func (s *Stack[T]) IsEmpty() bool { return s.arr.IsEmpty() }

// Push places v on top of the stack.
// Complexity: O(1) amortized.
func (s *Stack[T]) Push(v T) {
	s.arr.Append(v)
}

// Pop removes and returns the top element.
// Returns ErrEmptyStack when the stack is empty.
// Complexity: O(1).
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.arr.IsEmpty() {
		return zero, ErrEmptyStack
	}
	v, err := s.arr.RemoveAt(s.arr.Len() - 1)
	if err != nil {
		return zero, err
	}

	return v, nil
}

// Peek returns the top element without removing it.
// Returns ErrEmptyStack when the stack is empty.
// Complexity: O(1).
func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if s.arr.IsEmpty() {
		return zero, ErrEmptyStack
	}

	return s.arr.Get(s.arr.Len() - 1)
}

// Search returns the 1-based distance of the first occurrence of v from
// the top of the stack (the top element is at position 1), or NotFound.
// Complexity: O(N).
func (s *Stack[T]) Search(v T) int {
	it := s.arr.ReverseIterator()
	pos := 1
	for it.Next() {
		if it.Value() == v {
			return pos
		}
		pos++
	}

	return NotFound
}

// Contains reports whether the stack holds at least one occurrence of v.
// Complexity: O(N).
func (s *Stack[T]) Contains(v T) bool {
	return s.Search(v) != NotFound
}

// Clear removes all elements.
func (s *Stack[T]) Clear() {
	s.arr.Clear()
}

// ToSlice returns the elements top to bottom.
// Complexity: O(N).
func (s *Stack[T]) ToSlice() []T {
	out := make([]T, 0, s.arr.Len())
	it := s.arr.ReverseIterator()
	for it.Next() {
		out = append(out, it.Value())
	}

	return out
}

// Iterator returns a one-shot top-to-bottom iterator. A structural
// mutation of the stack mid-iteration surfaces as
// dynarr.ErrConcurrentModification from Err.
func (s *Stack[T]) Iterator() *dynarr.Iterator[T] {
	return s.arr.ReverseIterator()
}

// String renders the stack top-first as "top -> [e0, e1, ...]".
// Presentation only; no round-trip guarantee.
func (s *Stack[T]) String() string {
	var sb strings.Builder
	sb.WriteString("top -> [")
	it := s.arr.ReverseIterator()
	first := true
	for it.Next() {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", it.Value())
		first = false
	}
	sb.WriteByte(']')

	return sb.String()
}
