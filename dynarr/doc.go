// Package dynarr provides a generic growable array with an explicit
// resize and shrink policy, the mechanics usually hidden inside append.
//
// What
//
//   - Array[T] owns a contiguous backing store of capacity C ≥ size N.
//   - Index-based access, insertion, and removal with strict bound checks.
//   - Value-based search and removal using == over comparable elements.
//   - Fail-fast forward and reverse iterators with a generation stamp.
//
// Why
//
//   - Make the amortized-O(1) append contract visible: the capacity grows
//     by a factor of 1.5 only when N would exceed C, and shrinks back to
//     max(C/1.5, DefaultCapacity) once N drops to a quarter of C.
//   - Serve as the backing sequence for the stack adapter.
//
// Growth & shrink policy
//
//   - Append/InsertAt grow when N == C: newC = C·1.5 (at least C+1).
//   - RemoveAt/RemoveValue shrink when N ≤ C/4 and C > DefaultCapacity.
//   - Set never resizes; Clear resets capacity to DefaultCapacity.
//
// Complexity (N = size)
//
//   - Append: O(1) amortized
//   - Get/Set: O(1)
//   - InsertAt/RemoveAt at index i: O(N−i) due to the suffix shift
//   - IndexOf/Contains/RemoveValue: O(N)
//
// Usage
//
//	arr, _ := dynarr.New[string]()
//	arr.Append("alpha")
//	arr.Append("beta")
//	if err := arr.InsertAt(1, "gamma"); err != nil { ... }
//	old, _ := arr.Set(0, "delta") // old == "alpha"
//
//	it := arr.Iterator()
//	for it.Next() {
//	    _ = it.Value()
//	}
//	if err := it.Err(); err != nil { ... } // ErrConcurrentModification
//
// Errors
//
//   - ErrIndexOutOfRange        index outside [0,N) (or [0,N] for insertion).
//   - ErrOptionViolation        invalid Option (e.g. negative capacity).
//   - ErrConcurrentModification structural change detected mid-iteration.
//
// Misses from IndexOf are reported with the NotFound sentinel, not an error.
package dynarr
