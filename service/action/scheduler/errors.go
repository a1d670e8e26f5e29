package scheduler

import "errors"

var (
	// ErrInvalidQuantum is returned for a quantum lower than 1
	ErrInvalidQuantum = errors.New("scheduler: quantum must be positive")
	// ErrInvalidProcess is returned for a process without name or with negative time
	ErrInvalidProcess = errors.New("scheduler: invalid process")
	// ErrInvalidWorkload is returned when workload text cannot be parsed
	ErrInvalidWorkload = errors.New("scheduler: invalid workload")
)
