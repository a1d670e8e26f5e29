package alds

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/alds/container"
	"github.com/viant/alds/container/queue"
	"github.com/viant/alds/container/stack"
	"github.com/viant/alds/policy"
	"github.com/viant/alds/service/action/scheduler"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the library configuration. It
// can be populated from YAML or JSON; nested zero values inherit defaults
// when passed through DefaultConfig first.
type Config struct {
	Stack     ContainerConfig `json:"stack" yaml:"stack"`
	Queue     ContainerConfig `json:"queue" yaml:"queue"`
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`
	Processor ProcessorConfig `json:"processor" yaml:"processor"`
	Policy    *policy.Config  `json:"policy,omitempty" yaml:"policy,omitempty"`
	Tracing   TracingConfig   `json:"tracing" yaml:"tracing"`
}

// ContainerConfig selects container variant and capacity
type ContainerConfig struct {
	Kind     string `json:"kind" yaml:"kind"`
	Capacity int    `json:"capacity" yaml:"capacity"`
}

type SchedulerConfig struct {
	Quantum int `json:"quantum" yaml:"quantum"`
}

type ProcessorConfig struct {
	WorkerCount int `json:"workers" yaml:"workers"`
}

type TracingConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Service string `json:"service,omitempty" yaml:"service,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	// Output is a trace file path, stdout when empty
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// DefaultConfig returns a Config populated with the default values.
func DefaultConfig() *Config {
	return &Config{
		Stack:     ContainerConfig{Kind: string(container.KindArray), Capacity: stack.DefaultCapacity},
		Queue:     ContainerConfig{Kind: string(container.KindVec), Capacity: queue.DefaultCapacity},
		Scheduler: SchedulerConfig{Quantum: scheduler.DefaultQuantum},
		Processor: ProcessorConfig{WorkerCount: 1},
		Tracing:   TracingConfig{Service: "alds", Version: "0.1.0"},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var errs []error
	stackKind, err := container.ParseKind(c.Stack.Kind)
	if err != nil {
		errs = append(errs, fmt.Errorf("stack.kind: %w", err))
	} else if stackKind == container.KindRing {
		errs = append(errs, fmt.Errorf("stack.kind: %w", container.UnsupportedKindError("stack", stackKind)))
	}
	if _, err = container.ParseKind(c.Queue.Kind); err != nil {
		errs = append(errs, fmt.Errorf("queue.kind: %w", err))
	}
	if c.Stack.Capacity < 0 {
		errs = append(errs, fmt.Errorf("stack.capacity must be >= 0"))
	}
	if c.Queue.Capacity < 0 {
		errs = append(errs, fmt.Errorf("queue.capacity must be >= 0"))
	}
	if c.Scheduler.Quantum <= 0 {
		errs = append(errs, fmt.Errorf("scheduler.quantum must be > 0"))
	}
	if c.Processor.WorkerCount <= 0 {
		errs = append(errs, fmt.Errorf("processor.workers must be > 0"))
	}
	if err = c.Policy.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("policy: %w", err))
	}
	return errors.Join(errs...)
}

// LoadConfig downloads YAML or JSON config from URL, missing fields keep defaults
func LoadConfig(ctx context.Context, URL string, options ...storage.Option) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if err = ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}
