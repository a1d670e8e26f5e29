package stack

import "github.com/viant/alds/container"

// Vec is a stack backed by a slice allocated once; Capacity reports the
// allocation and Push never reallocates.
type Vec[T any] struct {
	items []T
}

func (s *Vec[T]) Push(item T) error {
	if s.IsFull() {
		return container.ErrFull
	}
	s.items = append(s.items, item)
	return nil
}

func (s *Vec[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, container.ErrEmpty
	}
	item := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return item, nil
}

func (s *Vec[T]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Vec[T]) IsFull() bool {
	return len(s.items) >= cap(s.items)
}

func (s *Vec[T]) Capacity() int {
	return cap(s.items)
}

func (s *Vec[T]) Len() int {
	return len(s.items)
}

// NewVec creates a growable-backed stack
func NewVec[T any](capacity int) *Vec[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Vec[T]{items: make([]T, 0, capacity)}
}

var _ Stack[any] = (*Vec[any])(nil)
