package stack

import (
	"github.com/viant/alds/container"
	"github.com/viant/alds/container/slot"
)

// Array is a stack over fixed slot storage. Cells [0, top) are occupied,
// cells [top, N) are empty. The zero value has no storage and is always
// full; use NewArray.
type Array[T any] struct {
	top   int
	items *slot.Storage[T]
}

// Push writes item at top
func (s *Array[T]) Push(item T) error {
	if s.IsFull() {
		return container.ErrFull
	}
	s.items.Write(s.top, item)
	s.top++
	return nil
}

// Pop takes the item below top
func (s *Array[T]) Pop() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, container.ErrEmpty
	}
	s.top--
	return s.items.Take(s.top), nil
}

func (s *Array[T]) IsEmpty() bool {
	return s.top == 0
}

func (s *Array[T]) IsFull() bool {
	return s.top >= s.items.Len()
}

func (s *Array[T]) Capacity() int {
	return s.items.Len()
}

func (s *Array[T]) Len() int {
	return s.top
}

// Reset empties all occupied cells
func (s *Array[T]) Reset() {
	s.items.Release(0, s.top)
	s.top = 0
}

// NewArray creates a stack with capacity fixed for its lifetime
func NewArray[T any](capacity int) *Array[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Array[T]{items: slot.New[T](capacity)}
}

// ensure Array implements Stack interface
var _ Stack[any] = (*Array[any])(nil)
