package event

import (
	"context"
	"log"
)

// Subscription delivers events of one topic to a handler on its own goroutine.
// When event types are given, events of other types are acknowledged and dropped.
type Subscription[T any] struct {
	topic   *Topic[T]
	handler func(*Event[T])
	types   map[string]bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func (s *Subscription[T]) accepts(e *Event[T]) bool {
	if len(s.types) == 0 {
		return true
	}
	return e.Context != nil && s.types[e.Context.EventType]
}

func (s *Subscription[T]) deliver(ctx context.Context) {
	defer close(s.done)
	for {
		e, err := s.topic.Next(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Printf("failed to consume %v event: %v", s.topic.name, err)
			continue
		}
		if e != nil && s.accepts(e) {
			s.handler(e)
		}
	}
}

// Stop cancels delivery and waits for an in-flight handler to return
func (s *Subscription[T]) Stop() {
	s.cancel()
	<-s.done
}

func newSubscription[T any](topic *Topic[T], handler func(*Event[T]), eventTypes []string) *Subscription[T] {
	ctx, cancel := context.WithCancel(context.Background())
	ret := &Subscription[T]{
		topic:   topic,
		handler: handler,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	if len(eventTypes) > 0 {
		ret.types = make(map[string]bool, len(eventTypes))
		for _, eventType := range eventTypes {
			ret.types[eventType] = true
		}
	}
	go ret.deliver(ctx)
	return ret
}
