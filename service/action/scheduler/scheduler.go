package scheduler

import (
	"fmt"

	"github.com/viant/alds/container"
	"github.com/viant/alds/container/queue"
)

// DefaultQuantum is the quantum used by the command line harness
const DefaultQuantum = 100

// Scheduler runs process lists on a freshly allocated ready queue
type Scheduler struct {
	quantum   int
	kind      container.Kind
	capacity  int
	listeners []Listener
}

// Quantum returns scheduler quantum
func (s *Scheduler) Quantum() int {
	return s.quantum
}

// Run seeds a new ready queue with processes in input order and schedules them
func (s *Scheduler) Run(processes []Process, listeners ...Listener) ([]Process, error) {
	if s.quantum <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantum, s.quantum)
	}
	ready, err := queue.New[Process](s.kind, s.capacity)
	if err != nil {
		return nil, err
	}
	for i := range processes {
		if err = processes[i].Validate(); err != nil {
			return nil, err
		}
		if err = ready.Enqueue(processes[i]); err != nil {
			return nil, fmt.Errorf("failed to enqueue %v: %w", processes[i].Name, err)
		}
	}
	all := make([]Listener, 0, len(s.listeners)+len(listeners))
	all = append(append(all, s.listeners...), listeners...)
	return Schedule(ready, s.quantum, all...)
}

// New creates a scheduler backed by the default array queue
func New(quantum int, options ...Option) *Scheduler {
	ret := &Scheduler{quantum: quantum, kind: container.KindArray, capacity: queue.DefaultCapacity}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
