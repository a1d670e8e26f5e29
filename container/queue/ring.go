package queue

import (
	"github.com/viant/alds/container"
	"github.com/viant/alds/container/slot"
)

// Ring is a bounded circular queue over slot storage. Like Array, the zero
// value is always full; use NewRing.
type Ring[T any] struct {
	items *slot.Storage[T]
	head  int
	size  int
}

func (q *Ring[T]) Enqueue(item T) error {
	if q.IsFull() {
		return container.ErrFull
	}
	tail := (q.head + q.size) % q.items.Len()
	q.items.Write(tail, item)
	q.size++
	return nil
}

func (q *Ring[T]) Dequeue() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, container.ErrEmpty
	}
	item := q.items.Take(q.head)
	q.head = (q.head + 1) % q.items.Len()
	q.size--
	return item, nil
}

func (q *Ring[T]) IsEmpty() bool {
	return q.size == 0
}

func (q *Ring[T]) IsFull() bool {
	return q.size >= q.items.Len()
}

func (q *Ring[T]) Len() int {
	return q.size
}

func (q *Ring[T]) Capacity() int {
	return q.items.Len()
}

// NewRing creates a circular queue
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring[T]{items: slot.New[T](capacity)}
}

var _ Queue[any] = (*Ring[any])(nil)
