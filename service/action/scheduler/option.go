package scheduler

import "github.com/viant/alds/container"

// Option customises a Scheduler
type Option func(s *Scheduler)

// WithQueueKind selects ready queue variant
func WithQueueKind(kind container.Kind) Option {
	return func(s *Scheduler) {
		s.kind = kind
	}
}

// WithCapacity sets ready queue capacity
func WithCapacity(capacity int) Option {
	return func(s *Scheduler) {
		s.capacity = capacity
	}
}

// WithListener adds a slice listener
func WithListener(listener Listener) Option {
	return func(s *Scheduler) {
		s.listeners = append(s.listeners, listener)
	}
}
