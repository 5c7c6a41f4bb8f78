// queue package

package queue

const (
	// QueueBufferSize represents the default maximum size of a queue
	QueueBufferSize = 1024
)

// InMemoryQueue implements an in-memory queue.
// It is not safe for concurrent use; the frame loop owns it.
type InMemoryQueue[T any] struct {
	items    []T
	capacity int
}

var _ Queue[int] = &InMemoryQueue[int]{}

// NewInMemoryQueue creates a new queue holding at most capacity items.
// A non-positive capacity uses QueueBufferSize.
func NewInMemoryQueue[T any](capacity int) *InMemoryQueue[T] {
	if capacity <= 0 {
		capacity = QueueBufferSize
	}
	return &InMemoryQueue[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
	}
}

// Enqueue adds an item to the end of the queue.
func (q *InMemoryQueue[T]) Enqueue(item T) error {
	if len(q.items) >= q.capacity {
		return ErrQueueFull
	}
	q.items = append(q.items, item)
	return nil
}

// Dequeue removes and returns the item from the front of the queue.
func (q *InMemoryQueue[T]) Dequeue() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return item, true
}

// Size returns the current size of the queue.
func (q *InMemoryQueue[T]) Size() int {
	return len(q.items)
}

// ReadAllMessages reads all pending messages in the queue
func (q *InMemoryQueue[T]) ReadAllMessages() []T {
	if len(q.items) == 0 {
		return nil
	}
	messages := make([]T, len(q.items))
	copy(messages, q.items)
	q.ClearQueue()
	return messages
}

// ClearQueue clears all messages from the queue.
func (q *InMemoryQueue[T]) ClearQueue() {
	clear(q.items)
	q.items = q.items[:0]
}
