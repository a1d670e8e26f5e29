package run

import (
	"context"

	"github.com/viant/alds/service/event"
)

// Events returns the run lifecycle topic
func Events(events *event.Service) (*event.Topic[*Run], error) {
	return event.TopicOf[*Run](events, event.RunTopic)
}

// Publish emits the run under its current state
func (r *Run) Publish(ctx context.Context, events *event.Service) error {
	topic, err := Events(events)
	if err != nil {
		return err
	}
	return topic.Publish(ctx, event.NewEvent(r.Context(string(r.State)), r))
}

// Subscribe delivers runs that reached one of states, any state when none is given
func Subscribe(events *event.Service, handler func(*Run), states ...State) (*event.Subscription[*Run], error) {
	eventTypes := make([]string, 0, len(states))
	for _, state := range states {
		eventTypes = append(eventTypes, string(state))
	}
	return event.Subscribe[*Run](events, event.RunTopic, func(e *event.Event[*Run]) {
		handler(e.Data)
	}, eventTypes...)
}
