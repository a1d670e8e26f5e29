package executor

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"reflect"

	"github.com/viant/alds/extension"
	"github.com/viant/alds/model/run"
	"github.com/viant/alds/policy"
	"github.com/viant/alds/service/event"
	"github.com/viant/structology/conv"
)

// Listener is invoked once a run action completes, regardless of its error.
type Listener func(aRun *run.Run, input, output interface{})

// StdoutListener prints the run, its input and output as JSON.
func StdoutListener(aRun *run.Run, input, output interface{}) {
	if aRun == nil {
		return
	}
	data, _ := json.Marshal(aRun)
	fmt.Println(string(data))
	if input != nil {
		in, _ := json.Marshal(input)
		fmt.Println(string(in))
	}
	if output != nil {
		out, _ := json.Marshal(output)
		fmt.Println(string(out))
	}
}

// Option is used to customise the executor instance.
type Option func(*service)

// WithListener sets the listener invoked after every run; nil disables it.
func WithListener(l Listener) Option {
	return func(s *service) {
		s.listener = l
	}
}

// WithEvents publishes a run event after every execution
func WithEvents(events *event.Service) Option {
	return func(s *service) {
		s.events = events
	}
}

// Service executes runs
type Service interface {
	Execute(ctx context.Context, aRun *run.Run) error
}

type service struct {
	actions   *extension.Actions
	converter *conv.Converter
	listener  Listener
	events    *event.Service
}

// Execute executes the run action; the run ends up completed or failed.
func (s *service) Execute(ctx context.Context, aRun *run.Run) error {
	aRun.Start()
	err := s.execute(ctx, aRun)
	aRun.Complete(err)

	if s.events != nil {
		if pErr := aRun.Publish(ctx, s.events); pErr != nil {
			log.Printf("failed to publish run %v: %v", aRun.ID, pErr)
		}
	}
	return err
}

func (s *service) execute(ctx context.Context, aRun *run.Run) error {
	actionService := s.actions.Lookup(aRun.Service)
	if actionService == nil {
		return fmt.Errorf("%w: %v", ErrServiceNotFound, aRun.Service)
	}
	signature := actionService.Methods().Lookup(aRun.Method)
	if signature == nil {
		return fmt.Errorf("%w: %v.%v", ErrMethodNotFound, aRun.Service, aRun.Method)
	}
	method, err := actionService.Method(aRun.Method)
	if err != nil {
		return fmt.Errorf("%w: %v.%v: %v", ErrMethodNotFound, aRun.Service, aRun.Method, err)
	}
	if !policy.FromContext(ctx).Approve(ctx, aRun.Action(), aRun.Input) {
		return fmt.Errorf("%w: %v", ErrActionDenied, aRun.Action())
	}

	input, err := s.typedValue(signature.Input, aRun.Input)
	if err != nil {
		return fmt.Errorf("failed to convert %v input: %w", aRun.Action(), err)
	}
	aRun.Input = input
	output := newInstancePtr(signature.Output)

	err = method(ctx, input, output)
	if s.listener != nil {
		s.listener(aRun, input, output)
	}
	if err != nil {
		return err
	}
	aRun.Output = output
	return nil
}

// typedValue returns value as an instance of aType, converting when needed
func (s *service) typedValue(aType reflect.Type, value interface{}) (interface{}, error) {
	if aType == nil {
		return value, nil
	}
	instance := newInstancePtr(aType)
	if value == nil {
		return instance, nil
	}
	valueType := reflect.TypeOf(value)
	switch {
	case valueType == aType:
		return value, nil
	case aType.Kind() == reflect.Ptr && valueType == aType.Elem():
		reflect.ValueOf(instance).Elem().Set(reflect.ValueOf(value))
		return instance, nil
	}
	if err := s.converter.Convert(value, instance); err != nil {
		return nil, err
	}
	return instance, nil
}

// newInstancePtr creates a new instance pointer of the given type
func newInstancePtr(t reflect.Type) interface{} {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return reflect.New(t).Interface()
}

// NewService creates a new executor service instance.
func NewService(actions *extension.Actions, opts ...Option) Service {
	options := conv.DefaultOptions()
	options.ClonePointerData = true
	options.IgnoreUnmapped = true
	options.AccessUnexported = true

	s := &service{
		actions:   actions,
		converter: conv.NewConverter(options),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}
