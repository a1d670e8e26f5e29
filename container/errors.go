package container

import "errors"

// Sentinel errors shared by every container variant. Callers detect them with
// errors.Is; containers never panic on capacity or occupancy misuse.
var (
	// ErrFull is returned when an insertion is attempted on a container at capacity.
	ErrFull = errors.New("container: is full")

	// ErrEmpty is returned when a removal is attempted on an empty container.
	ErrEmpty = errors.New("container: is empty")
)
