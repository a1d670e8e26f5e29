package event

import (
	"fmt"
	"sync"

	"github.com/viant/alds/service/messaging"
	"github.com/viant/alds/service/messaging/memory"
)

// RunTopic carries run lifecycle events; the event type is the run state.
const RunTopic = "run"

type stopper interface {
	Stop()
}

// Service owns named topics and at most one subscription per topic.
type Service struct {
	newConfig     func(topic string) memory.Config
	mux           sync.Mutex
	topics        map[string]any
	subscriptions map[string]stopper
}

// Close stops all subscriptions
func (s *Service) Close() {
	s.mux.Lock()
	subscriptions := s.subscriptions
	s.subscriptions = make(map[string]stopper)
	s.mux.Unlock()
	for _, subscription := range subscriptions {
		subscription.Stop()
	}
}

// TopicOf returns the topic with the given name, creating it on first use.
// A name is bound to the payload type it was first requested with.
func TopicOf[T any](s *Service, name string) (*Topic[T], error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return topicOf[T](s, name)
}

func topicOf[T any](s *Service, name string) (*Topic[T], error) {
	if existing, ok := s.topics[name]; ok {
		topic, ok := existing.(*Topic[T])
		if !ok {
			return nil, fmt.Errorf("topic %v carries %T, not %T", name, existing, topic)
		}
		return topic, nil
	}
	topic := &Topic[T]{name: name, queue: memory.NewQueue[Event[T]](s.newConfig(name))}
	s.topics[name] = topic
	return topic, nil
}

// Subscribe replaces the subscription of the named topic. With eventTypes,
// only events of those types reach the handler.
func Subscribe[T any](s *Service, name string, handler func(*Event[T]), eventTypes ...string) (*Subscription[T], error) {
	s.mux.Lock()
	topic, err := topicOf[T](s, name)
	if err != nil {
		s.mux.Unlock()
		return nil, err
	}
	previous := s.subscriptions[name]
	subscription := newSubscription(topic, handler, eventTypes)
	s.subscriptions[name] = subscription
	s.mux.Unlock()
	if previous != nil {
		previous.Stop()
	}
	return subscription, nil
}

func New(vendor messaging.Vendor, opts ...Option) (*Service, error) {
	ret := &Service{
		topics:        make(map[string]any),
		subscriptions: make(map[string]stopper),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if vendor != messaging.VendorMemory {
		return nil, fmt.Errorf("unsupported queue vendor: %s", vendor)
	}
	if ret.newConfig == nil {
		ret.newConfig = func(string) memory.Config {
			config := memory.DefaultConfig()
			config.NonBlocking = true
			return config
		}
	}
	return ret, nil
}
