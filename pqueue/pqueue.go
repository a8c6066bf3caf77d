package pqueue

import (
	g "github.com/zyedidia/generic"
)

// DefaultCapacity is used when New receives a capacity below 1.
const DefaultCapacity = 16

// Queue is a binary heap. The zero value is not usable; construct with New.
//
// Queue is not safe for concurrent use.
type Queue[T any] struct {
	heap   []T // heap[0] is unused
	size   int
	before g.LessFn[T]
}

// New returns an empty Queue able to hold capacity elements before growing.
// Complexity: O(capacity).
func New[T any](capacity int, before g.LessFn[T]) *Queue[T] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &Queue[T]{
		heap:   make([]T, capacity+1),
		before: before,
	}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.size }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// Add inserts item, keeping heap order.
func (q *Queue[T]) Add(item T) {
	if q.size+1 == len(q.heap) {
		q.grow()
	}
	q.size++
	q.heap[q.size] = item
	q.percolateUp(q.size)
}

// Poll removes and returns the element that comes first under the ordering.
// ok is false when the queue is empty.
func (q *Queue[T]) Poll() (item T, ok bool) {
	if q.size == 0 {
		return item, false
	}
	item = q.heap[1]
	q.heap[1] = q.heap[q.size]

	var zero T
	q.heap[q.size] = zero // drop the reference held by the vacated slot
	q.size--
	q.percolateDown(1)

	return item, true
}

// Peek returns the element Poll would return, without removing it.
func (q *Queue[T]) Peek() (item T, ok bool) {
	if q.size == 0 {
		return item, false
	}

	return q.heap[1], true
}

func (q *Queue[T]) grow() {
	next := make([]T, 2*len(q.heap)+1)
	copy(next[1:], q.heap[1:q.size+1])
	q.heap = next
}

func (q *Queue[T]) percolateUp(i int) {
	for i > 1 {
		parent := i / 2
		if !q.before(q.heap[i], q.heap[parent]) {
			return
		}
		q.heap[i], q.heap[parent] = q.heap[parent], q.heap[i]
		i = parent
	}
}

func (q *Queue[T]) percolateDown(i int) {
	for {
		left, right, top := 2*i, 2*i+1, i
		if left <= q.size && q.before(q.heap[left], q.heap[top]) {
			top = left
		}
		if right <= q.size && q.before(q.heap[right], q.heap[top]) {
			top = right
		}
		if top == i {
			return
		}
		q.heap[i], q.heap[top] = q.heap[top], q.heap[i]
		i = top
	}
}
