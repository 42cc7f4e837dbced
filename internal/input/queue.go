package input

import "sync"

// Queue buffers events between producers and the frame loop. Drain hands
// the whole pending batch over at once so a frame never sees a partial set.
type Queue struct {
	mu      sync.Mutex
	pending []Event
	spare   []Event
}

// Push appends events in arrival order.
func (q *Queue) Push(events ...Event) {
	q.mu.Lock()
	q.pending = append(q.pending, events...)
	q.mu.Unlock()
}

// Drain returns all pending events and empties the queue. The returned slice
// is valid until the next call to Drain.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = q.spare[:0]
	q.spare = out
	return out
}

// Len reports the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
