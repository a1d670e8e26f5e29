package extension

import (
	"sort"
	"sync"

	"github.com/viant/alds/model/types"
	"github.com/viant/x"
)

// DataTypeIniter is implemented by services that register extra data types
type DataTypeIniter interface {
	InitTypes(types *Types)
}

// Actions provides action service
type Actions struct {
	types    *Types
	services map[string]types.Service
	mux      sync.RWMutex
}

func (s *Actions) Types() *Types {
	return s.types
}

// Lookup returns a service by name
func (s *Actions) Lookup(name string) types.Service {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.services[name]
}

// Names returns sorted names of registered services
func (s *Actions) Names() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	ret := make([]string, 0, len(s.services))
	for name := range s.services {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Register registers a service together with its method input and output types
func (s *Actions) Register(service types.Service) {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, signature := range service.Methods() {
		s.types.RegisterType(signature.Input)
		s.types.RegisterType(signature.Output)
	}
	if typer, ok := service.(DataTypeIniter); ok {
		typer.InitTypes(s.types)
	}
	s.services[service.Name()] = service
}

// NewActions creates a new action service
func NewActions(goTypes ...*x.Type) *Actions {
	ret := &Actions{
		types:    NewTypes(),
		services: make(map[string]types.Service),
	}
	for _, t := range goTypes {
		ret.types.Register(t)
	}
	return ret
}
