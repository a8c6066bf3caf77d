// Package pqueue provides an array-backed binary heap ordered by a caller-supplied
// comparison.
//
// The queue is ordering-agnostic: New takes a generic.LessFn[T] named before, where
// before(a, b) reports that a must be polled ahead of b. Passing a "<" comparison gives a
// min-heap (lowest cost first, as the path planner uses it); passing ">" gives a max-heap
// (highest score first).
//
// Layout:
//
//   - Elements live in a 1-indexed slice: the root is at 1, children of i are 2i and 2i+1.
//   - When the backing array is full it is replaced by one of length 2·len+1 and the
//     existing elements are copied over.
//
// Complexity:
//
//   - Add:  O(log n) percolate-up (amortized O(1) growth).
//   - Poll: O(log n) percolate-down.
//   - Peek, Len, IsEmpty: O(1).
//
// Ties between elements that compare equal are broken arbitrarily.
package pqueue
