package postfix

import "github.com/viant/alds/container"

// Option customises an Evaluator
type Option func(e *Evaluator)

// WithStackKind selects stack variant
func WithStackKind(kind container.Kind) Option {
	return func(e *Evaluator) {
		e.kind = kind
	}
}

// WithCapacity sets stack capacity
func WithCapacity(capacity int) Option {
	return func(e *Evaluator) {
		e.capacity = capacity
	}
}
