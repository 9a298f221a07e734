// Package sllist provides a generic singly linked list: a node chain
// holding a head reference only, with no tail cache.
//
// What
//
//   - List[T] is a sequence of nodes, each owning a value and a link to
//     the next node (nil signals the end).
//   - Front operations are O(1); anything touching the tail walks the
//     chain and costs O(N).
//   - In-place iterative reversal with O(1) extra space.
//   - Fail-fast forward iterator with a generation stamp.
//
// Why
//
//   - Show the raw pointer-rewiring mechanics a slice hides: insertion is
//     relinking a single predecessor, reversal is a three-pointer walk.
//
// Complexity (N = size)
//
//   - PushFront/PopFront/Front: O(1)
//   - PushBack/PopBack/Back: O(N) — there is no tail reference
//   - Get/Set/InsertAt/DeleteAt/IndexOf/DeleteValue: O(N)
//   - Reverse: O(N) time, O(1) space
//
// Usage
//
//	l := sllist.New[int]()
//	l.PushFront(2)
//	l.PushFront(1)
//	l.PushBack(3) // walks to the tail
//	l.Reverse()   // [3 2 1]
//
//	v, err := l.PopFront()
//	if err != nil { ... } // ErrEmptyList when empty
//
// Errors
//
//   - ErrEmptyList              Pop/Front/Back on an empty list.
//   - ErrIndexOutOfRange        index outside [0,N) (or [0,N] for insertion).
//   - ErrConcurrentModification structural change detected mid-iteration.
//
// Misses from IndexOf are reported with the NotFound sentinel, not an error.
package sllist
