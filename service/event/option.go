package event

import (
	"github.com/viant/alds/service/messaging/memory"
)

type Option func(s *Service)

// WithMemoryConfig sets the per topic memory queue configuration
func WithMemoryConfig(newConfig func(topic string) memory.Config) Option {
	return func(s *Service) {
		s.newConfig = newConfig
	}
}
