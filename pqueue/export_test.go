package pqueue

// HeapOrdered reports whether every parent comes no later than its children.
func (q *Queue[T]) HeapOrdered() bool {
	for i := 2; i <= q.size; i++ {
		if q.before(q.heap[i], q.heap[i/2]) {
			return false
		}
	}

	return true
}

// BackingLen exposes the backing array length for growth tests.
func (q *Queue[T]) BackingLen() int { return len(q.heap) }
