// Package queue provides a generic FIFO queue backed by a growable
// ring buffer, so both ends are O(1) amortized.
//
// What
//
//   - Enqueue at the back, Dequeue at the front, with wraparound indexing
//     instead of element shifting.
//   - Poll is the non-throwing Dequeue variant: zero value + false on empty.
//   - PeekFront/PeekBack inspect both ends without removal.
//   - One-shot front-to-back iteration, fail-fast via a generation stamp.
//
// Why
//
//   - A head-only linked list or a plain slice gives O(N) at one end;
//     the ring keeps the FIFO contract at O(1) amortized for both.
//
// Complexity (N = size)
//
//   - Enqueue: O(1) amortized; Dequeue/Poll/PeekFront/PeekBack: O(1)
//   - Contains: O(N)
//
// Usage
//
//	q := queue.New[int]()
//	q.Enqueue(1)
//	q.Enqueue(2)
//	v, err := q.Dequeue() // 1
//	if err != nil { ... } // ErrEmptyQueue when empty
//
//	if v, ok := q.Poll(); ok { ... } // sentinel variant, never errors
//
// Errors
//
//   - ErrEmptyQueue              Dequeue/Peek on an empty queue.
//   - ErrConcurrentModification  structural change detected mid-iteration.
package queue
