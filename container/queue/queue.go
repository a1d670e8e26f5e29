// Package queue provides first-in-first-out containers sharing a single Queue
// contract.
//
//   - Array keeps values in fixed slot storage with non-wrapping head and tail
//     counters: capacity is consumed by lifetime insertions, so the queue
//     reports full once tail reaches N even when earlier cells were vacated.
//   - Ring is the circular-buffer alternative; it is full only when N values are live.
//   - Vec is unbounded and grows with its backing slice.
package queue

import (
	"github.com/viant/alds/container"
)

// DefaultCapacity is the capacity used when a non-positive capacity is requested.
const DefaultCapacity = 256

// Queue represents a first-in-first-out container
type Queue[T any] interface {
	// Enqueue appends an item at the tail, returns container.ErrFull at capacity
	Enqueue(item T) error

	// Dequeue removes the item at the head, returns container.ErrEmpty when empty
	Dequeue() (T, error)

	IsEmpty() bool

	IsFull() bool

	// Len returns the number of items currently held
	Len() int

	// Capacity returns the number of insertions the queue can accept
	Capacity() int
}

// New creates a queue of the given kind, KindArray is used for an empty kind.
func New[T any](kind container.Kind, capacity int) (Queue[T], error) {
	switch kind {
	case "", container.KindArray:
		return NewArray[T](capacity), nil
	case container.KindRing:
		return NewRing[T](capacity), nil
	case container.KindVec:
		return NewVec[T](capacity), nil
	}
	return nil, container.UnsupportedKindError("queue", kind)
}
