package scheduler

import (
	"context"
	"reflect"
	"strings"

	"github.com/viant/alds/extension"
	"github.com/viant/alds/model/types"
	"github.com/viant/alds/progress"
)

// Name is the action service name
const Name = "scheduler"

// Input represents schedule input
type Input struct {
	Quantum   int       `json:"quantum" yaml:"quantum"`
	Processes []Process `json:"processes" yaml:"processes"`
}

// Output represents schedule output
type Output struct {
	Completed []Process `json:"completed" yaml:"completed"`
}

// Service exposes round-robin scheduling as an action service
type Service struct {
	options []Option
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "schedule",
			Description: "Runs processes round-robin with the given quantum and returns them in completion order.",
			Input:       reflect.TypeOf(&Input{}),
			Output:      reflect.TypeOf(&Output{}),
		},
	}
}

// InitTypes registers process and workload types
func (s *Service) InitTypes(registry *extension.Types) {
	registry.RegisterType(reflect.TypeOf(Process{}))
	registry.RegisterType(reflect.TypeOf(Workload{}))
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "schedule":
		return s.schedule, nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) schedule(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*Input)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*Output)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	workload := &Workload{Quantum: input.Quantum, Processes: input.Processes}
	if err := workload.Validate(); err != nil {
		return err
	}
	progress.UpdateCtx(ctx, progress.Delta{Total: len(input.Processes), Pending: len(input.Processes)})
	tracker := func(slice Slice) {
		if slice.Completed {
			progress.UpdateCtx(ctx, progress.Delta{Slices: 1, Completed: 1, Pending: -1})
			return
		}
		progress.UpdateCtx(ctx, progress.Delta{Slices: 1, Requeued: 1})
	}
	completed, err := New(input.Quantum, s.options...).Run(input.Processes, tracker)
	if err != nil {
		return err
	}
	output.Completed = completed
	return nil
}

// NewService creates a scheduler action service; options configure the ready queue
func NewService(options ...Option) *Service {
	return &Service{options: options}
}
