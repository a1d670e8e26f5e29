package alds

import (
	"log"

	"github.com/viant/alds/container"
	"github.com/viant/alds/extension"
	"github.com/viant/alds/model/run"
	"github.com/viant/alds/model/types"
	"github.com/viant/alds/policy"
	"github.com/viant/alds/service/action/postfix"
	"github.com/viant/alds/service/action/scheduler"
	rmemory "github.com/viant/alds/service/dao/run/memory"
	"github.com/viant/alds/service/event"
	"github.com/viant/alds/service/executor"
	"github.com/viant/alds/service/messaging"
	mmemory "github.com/viant/alds/service/messaging/memory"
	"github.com/viant/alds/service/processor"
	"github.com/viant/alds/tracing"
	"github.com/viant/x"
)

// Service wires action services, executor, processor and run history
type Service struct {
	runtime           *Runtime
	config            *Config
	actions           *extension.Actions
	extensionTypes    []*x.Type
	extensionServices []types.Service
	eventService      *event.Service
	runListener       func(*run.Run)
	runListenerStates []run.State
	executor          executor.Service
	executorOptions   []executor.Option
	queue             messaging.Queue[run.Run]
	processorWorkers  int
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	s.actions = extension.NewActions(s.extensionTypes...)

	executorOptions := s.executorOptions
	if s.runListener != nil {
		s.subscribeRuns()
	}
	if s.eventService != nil {
		executorOptions = append([]executor.Option{executor.WithEvents(s.eventService)}, executorOptions...)
	}
	s.executor = executor.NewService(s.actions, executorOptions...)
	s.runtime.executor = s.executor
	s.runtime.actions = s.actions

	var err error
	if s.runtime.processor, err = processor.New(
		processor.WithExecutor(s.executor),
		processor.WithMessageQueue(s.queue),
		processor.WithRunDAO(s.runtime.runDAO),
		processor.WithWorkers(s.processorWorkers)); err != nil {
		log.Printf("failed to create processor: %v", err)
	}

	stackKind, _ := container.ParseKind(s.config.Stack.Kind)
	queueKind, _ := container.ParseKind(s.config.Queue.Kind)
	s.actions.Register(postfix.NewService(postfix.WithStackKind(stackKind), postfix.WithCapacity(s.config.Stack.Capacity)))
	s.actions.Register(scheduler.NewService(scheduler.WithQueueKind(queueKind), scheduler.WithCapacity(s.config.Queue.Capacity)))
	for _, service := range s.extensionServices {
		s.actions.Register(service)
	}
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	s.runtime.config = s.config
	if s.runtime.policy == nil && s.config.Policy != nil {
		s.runtime.policy = policy.FromConfig(s.config.Policy)
	}
	if s.processorWorkers <= 0 {
		s.processorWorkers = s.config.Processor.WorkerCount
	}
	if tc := s.config.Tracing; tc.Enabled {
		if err := tracing.Init(tc.Service, tc.Version, tc.Output); err != nil {
			log.Printf("failed to initialise tracing: %v", err)
		}
	}
	if s.queue == nil {
		s.queue = mmemory.NewQueue[run.Run](mmemory.DefaultConfig())
	}
	if s.runtime.runDAO == nil {
		s.runtime.runDAO = rmemory.New()
	}
}

func (s *Service) subscribeRuns() {
	if s.eventService == nil {
		events, err := event.New(messaging.VendorMemory)
		if err != nil {
			log.Printf("failed to create event service: %v", err)
			return
		}
		s.eventService = events
	}
	subscription, err := run.Subscribe(s.eventService, s.runListener, s.runListenerStates...)
	if err != nil {
		log.Printf("failed to subscribe run listener: %v", err)
		return
	}
	s.runtime.subscription = subscription
}

// Config returns the effective configuration
func (s *Service) Config() *Config {
	return s.config
}

// Actions returns the action registry
func (s *Service) Actions() *extension.Actions {
	return s.actions
}

func (s *Service) RegisterExtensionTypes(types ...*x.Type) {
	for i := range types {
		s.actions.Types().Register(types[i])
	}
}

func (s *Service) RegisterExtensionServices(services ...types.Service) {
	for i := range services {
		s.actions.Register(services[i])
	}
}

func (s *Service) Runtime() *Runtime {
	return s.runtime
}

// New creates a Service; configuration errors are reported by Config.Validate
func New(options ...Option) *Service {
	ret := &Service{runtime: &Runtime{}}
	ret.init(options)
	return ret
}
