package processor

import (
	"github.com/viant/alds/model/run"
	"github.com/viant/alds/service/dao"
	"github.com/viant/alds/service/executor"
	"github.com/viant/alds/service/messaging"
)

// Option customises the processor
type Option func(*Service)

// WithRunDAO sets the run store implementation
func WithRunDAO(runDAO dao.Service[string, run.Run]) Option {
	return func(s *Service) {
		s.runDAO = runDAO
	}
}

// WithMessageQueue sets the message queue implementation
func WithMessageQueue(queue messaging.Queue[run.Run]) Option {
	return func(s *Service) {
		s.queue = queue
	}
}

// WithExecutor sets the run executor
func WithExecutor(executor executor.Service) Option {
	return func(s *Service) {
		s.executor = executor
	}
}

// WithWorkers sets the number of worker goroutines
func WithWorkers(count int) Option {
	return func(s *Service) {
		s.config.WorkerCount = count
	}
}

// WithConfig sets the configuration for the service
func WithConfig(config Config) Option {
	return func(s *Service) {
		s.config = config
	}
}
