package game

import "sync"

// Queue is a FIFO of T, safe for concurrent use. Transports push onto
// body queues from their own goroutines; the tick loop drains them.
// The zero value is ready to use.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
}

// Push appends v to the back of the queue.
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, v)
}

// Pop removes and returns the front of the queue. The second return
// is false when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}

	v := q.items[0]
	q.items = q.items[1:]
	return v, true
}

// Len returns the number of queued entries.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Drain removes and returns all queued entries in order.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.items
	q.items = nil
	return out
}
