package queue

import "github.com/viant/alds/container"

// Vec is an unbounded queue backed by a growable slice.
type Vec[T any] struct {
	items []T
}

// Enqueue appends item, it never fails
func (q *Vec[T]) Enqueue(item T) error {
	q.items = append(q.items, item)
	return nil
}

func (q *Vec[T]) Dequeue() (T, error) {
	var zero T
	if len(q.items) == 0 {
		return zero, container.ErrEmpty
	}
	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return item, nil
}

func (q *Vec[T]) IsEmpty() bool {
	return len(q.items) == 0
}

// IsFull always returns false
func (q *Vec[T]) IsFull() bool {
	return false
}

func (q *Vec[T]) Len() int {
	return len(q.items)
}

// Capacity returns the current allocation of the backing slice
func (q *Vec[T]) Capacity() int {
	return cap(q.items)
}

// NewVec creates an unbounded queue with an initial allocation
func NewVec[T any](capacity int) *Vec[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Vec[T]{items: make([]T, 0, capacity)}
}

var _ Queue[any] = (*Vec[any])(nil)
