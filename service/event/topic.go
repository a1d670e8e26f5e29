package event

import (
	"context"
	"fmt"

	"github.com/viant/alds/internal/clock"
	"github.com/viant/alds/service/messaging"
)

// Topic is a named stream of events carrying T, backed by a single queue.
type Topic[T any] struct {
	name  string
	queue messaging.Queue[Event[T]]
}

func (t *Topic[T]) Name() string {
	return t.name
}

// Publish enqueues the event, stamping CreatedAt when unset
func (t *Topic[T]) Publish(ctx context.Context, e *Event[T]) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = clock.Now()
	}
	if err := t.queue.Publish(ctx, e); err != nil {
		return fmt.Errorf("failed to publish %v event: %w", t.name, err)
	}
	return nil
}

// Next blocks until an event is available and acknowledges it
func (t *Topic[T]) Next(ctx context.Context) (*Event[T], error) {
	msg, err := t.queue.Consume(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}
