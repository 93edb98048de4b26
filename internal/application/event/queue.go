// Package event provides the per-frame message queues connecting systems.
package event

// Queue is a double-buffered event queue.
//
// Events sent during frame N can be drained during frame N or N+1. Update
// must be called exactly once at the start of every frame; events that were
// not drained by then are dropped. Each event is drained at most once, so a
// queue has a single consumer.
type Queue[T any] struct {
	prev []T
	cur  []T
}

// NewQueue creates an empty queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Send appends an event to the current frame's buffer
func (q *Queue[T]) Send(ev T) {
	q.cur = append(q.cur, ev)
}

// Update rotates the buffers, discarding events older than one frame
func (q *Queue[T]) Update() {
	q.prev = q.cur
	q.cur = nil
}

// Drain returns all unread events in send order and marks them read
func (q *Queue[T]) Drain() []T {
	if len(q.prev) == 0 && len(q.cur) == 0 {
		return nil
	}
	out := make([]T, 0, len(q.prev)+len(q.cur))
	out = append(out, q.prev...)
	out = append(out, q.cur...)
	q.prev = nil
	q.cur = nil
	return out
}

// Len returns the number of unread events
func (q *Queue[T]) Len() int {
	return len(q.prev) + len(q.cur)
}
