package queue

import (
	"github.com/viant/alds/container"
	"github.com/viant/alds/container/slot"
)

// Array is a queue over fixed slot storage. Cells [head, tail) are occupied in
// FIFO order; neither counter wraps. The zero value has no storage and is
// always full; use NewArray.
type Array[T any] struct {
	items *slot.Storage[T]
	head  int
	tail  int
}

// Enqueue writes item at tail
func (q *Array[T]) Enqueue(item T) error {
	if q.IsFull() {
		return container.ErrFull
	}
	q.items.Write(q.tail, item)
	q.tail++
	return nil
}

// Dequeue takes the item at head
func (q *Array[T]) Dequeue() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, container.ErrEmpty
	}
	item := q.items.Take(q.head)
	q.head++
	return item, nil
}

func (q *Array[T]) IsEmpty() bool {
	return q.head == q.tail
}

// IsFull reports whether the lifetime insertion count reached capacity
func (q *Array[T]) IsFull() bool {
	return q.tail >= q.items.Len()
}

func (q *Array[T]) Len() int {
	return q.tail - q.head
}

func (q *Array[T]) Capacity() int {
	return q.items.Len()
}

// Reset empties all occupied cells and makes the whole capacity available again
func (q *Array[T]) Reset() {
	q.items.Release(q.head, q.tail)
	q.head, q.tail = 0, 0
}

// NewArray creates a non-wrapping queue
func NewArray[T any](capacity int) *Array[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Array[T]{items: slot.New[T](capacity)}
}

// ensure Array implements Queue interface
var _ Queue[any] = (*Array[any])(nil)
