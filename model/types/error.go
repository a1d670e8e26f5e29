package types

import (
	"errors"
	"fmt"
)

var (
	// ErrMethodNotFound is returned when a service does not expose the requested method.
	ErrMethodNotFound = errors.New("method not found")

	// ErrInvalidInput is returned when a method receives an input of unexpected type.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidOutput is returned when a method receives an output of unexpected type.
	ErrInvalidOutput = errors.New("invalid output")
)

func NewMethodNotFoundError(name string) error {
	return fmt.Errorf("%w: %v", ErrMethodNotFound, name)
}

func NewInvalidInputError(in interface{}) error {
	return fmt.Errorf("%w: %T", ErrInvalidInput, in)
}

func NewInvalidOutputError(out interface{}) error {
	return fmt.Errorf("%w: %T", ErrInvalidOutput, out)
}
