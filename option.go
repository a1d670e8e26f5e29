package alds

import (
	"github.com/viant/alds/model/run"
	"github.com/viant/alds/model/types"
	"github.com/viant/alds/policy"
	"github.com/viant/alds/progress"
	"github.com/viant/alds/service/dao"
	"github.com/viant/alds/service/event"
	"github.com/viant/alds/service/executor"
	"github.com/viant/alds/service/messaging"
	"github.com/viant/alds/tracing"
	"github.com/viant/x"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option customises the Service
type Option func(s *Service)

// WithConfig sets the configuration, nil keeps the defaults
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithExtensionTypes sets the extension types
func WithExtensionTypes(types ...*x.Type) Option {
	return func(s *Service) {
		s.extensionTypes = types
	}
}

// WithExtensionServices sets the extension services
func WithExtensionServices(services ...types.Service) Option {
	return func(s *Service) {
		s.extensionServices = services
	}
}

// WithEventService publishes a run event after every execution
func WithEventService(service *event.Service) Option {
	return func(s *Service) {
		s.eventService = service
	}
}

// WithRunListener creates an event service when none is set and subscribes
// handler to runs that reached one of states, any state when none is given.
func WithRunListener(handler func(*run.Run), states ...run.State) Option {
	return func(s *Service) {
		s.runListener = handler
		s.runListenerStates = states
	}
}

// WithRunDAO sets the run history store
func WithRunDAO(dao dao.Service[string, run.Run]) Option {
	return func(s *Service) {
		s.runtime.runDAO = dao
	}
}

// WithQueue sets the message queue used for submitted runs
func WithQueue(queue messaging.Queue[run.Run]) Option {
	return func(s *Service) {
		s.queue = queue
	}
}

// WithProcessorWorkers sets the processor workers
func WithProcessorWorkers(count int) Option {
	return func(s *Service) {
		s.processorWorkers = count
	}
}

// WithExecutorOptions lets the caller supply additional options passed to
// executor.NewService.
func WithExecutorOptions(opts ...executor.Option) Option {
	return func(s *Service) {
		s.executorOptions = append(s.executorOptions, opts...)
	}
}

// WithPolicy sets the default policy applied when the call context carries none
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) {
		s.runtime.policy = p
	}
}

// WithProgressListener registers a callback receiving scheduler progress
func WithProgressListener(listener func(progress.Snapshot)) Option {
	return func(s *Service) {
		s.runtime.onProgress = listener
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file path. The first
// successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter. The first
// successful initialisation wins.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
