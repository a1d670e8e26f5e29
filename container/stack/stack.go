// Package stack provides bounded LIFO containers.
//
// Two variants implement the same Stack contract: Array keeps its values in
// pre-allocated slot storage guarded by a single top counter, Vec keeps them in
// a slice allocated once with the requested capacity. Neither ever grows.
package stack

import (
	"github.com/viant/alds/container"
)

// DefaultCapacity is the capacity used when a non-positive capacity is requested.
const DefaultCapacity = 256

// Stack represents a bounded last-in-first-out container
type Stack[T any] interface {
	// Push adds an item on top, returns container.ErrFull at capacity
	Push(item T) error

	// Pop removes the top item, returns container.ErrEmpty when empty
	Pop() (T, error)

	IsEmpty() bool

	IsFull() bool

	// Capacity returns the maximum number of items
	Capacity() int

	// Len returns the number of items currently held
	Len() int
}

// New creates a stack of the given kind, KindArray is used for an empty kind.
func New[T any](kind container.Kind, capacity int) (Stack[T], error) {
	switch kind {
	case "", container.KindArray:
		return NewArray[T](capacity), nil
	case container.KindVec:
		return NewVec[T](capacity), nil
	}
	return nil, container.UnsupportedKindError("stack", kind)
}
