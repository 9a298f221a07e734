// Package stack provides a generic LIFO stack as a thin adapter over
// the dynarr growable array (the top of the stack is the end of the array).
//
// What
//
//   - Push/Pop/Peek with O(1) amortized cost, delegated to dynarr.
//   - Search returns the 1-based distance of a value from the top.
//   - One-shot top-to-bottom iteration, fail-fast via the backing
//     array's generation stamp.
//
// Why
//
//   - Demonstrate the adapter pattern: the stack carries no state of its
//     own beyond the backing sequence, so every complexity and resize
//     guarantee is inherited from dynarr.
//
// Complexity (N = size)
//
//   - Push: O(1) amortized; Pop/Peek: O(1)
//   - Search/Contains: O(N)
//
// Usage
//
//	s := stack.New[int]()
//	s.Push(1)
//	s.Push(2)
//	top, _ := s.Pop()  // 2
//	pos := s.Search(1) // 1 — now at the top
//
// Errors
//
//   - ErrEmptyStack Pop/Peek on an empty stack.
//
// Misses from Search are reported with the NotFound sentinel, not an error.
package stack
