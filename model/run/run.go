package run

import (
	"time"

	"github.com/viant/alds/internal/clock"
	"github.com/viant/alds/internal/idgen"
	"github.com/viant/alds/policy"
	"github.com/viant/alds/service/event"
)

// State represents the lifecycle state of a run
type State string

const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// IsTerminal returns true when the run can no longer change
func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateFailed
}

// Run represents a single invocation of an action service method
type Run struct {
	ID          string      `json:"id" yaml:"id"`
	Service     string      `json:"service" yaml:"service"`
	Method      string      `json:"method" yaml:"method"`
	State       State       `json:"state" yaml:"state"`
	Input       interface{} `json:"input,omitempty" yaml:"input,omitempty"`
	Output      interface{} `json:"output,omitempty" yaml:"output,omitempty"`
	Error       string      `json:"error,omitempty" yaml:"error,omitempty"`
	ScheduledAt time.Time   `json:"scheduledAt" yaml:"scheduledAt"`
	StartedAt   *time.Time  `json:"startedAt,omitempty" yaml:"startedAt,omitempty"`
	CompletedAt *time.Time  `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
	// Policy carries the caller policy for runs executed outside the caller context
	Policy *policy.Config `json:"policy,omitempty" yaml:"policy,omitempty"`
}

// Action returns fully qualified action name: service.method
func (r *Run) Action() string {
	return r.Service + "." + r.Method
}

// Start marks the run as running
func (r *Run) Start() {
	now := clock.Now()
	r.StartedAt = &now
	r.State = StateRunning
}

// Complete marks the run as completed or failed depending on err
func (r *Run) Complete(err error) {
	now := clock.Now()
	r.CompletedAt = &now
	if err != nil {
		r.State = StateFailed
		r.Error = err.Error()
		return
	}
	r.State = StateCompleted
}

// Elapsed returns time taken by the run, zero while it has not completed
func (r *Run) Elapsed() time.Duration {
	if r.StartedAt == nil || r.CompletedAt == nil {
		return 0
	}
	return r.CompletedAt.Sub(*r.StartedAt)
}

// Context returns event context for the run
func (r *Run) Context(eventType string) *event.Context {
	return &event.Context{
		RunID:       r.ID,
		EventType:   eventType,
		Service:     r.Service,
		Method:      r.Method,
		TimeTakenMs: int(r.Elapsed().Milliseconds()),
	}
}

// New creates a pending run for the service method
func New(service, method string, input interface{}) *Run {
	return &Run{
		ID:          idgen.New(),
		Service:     service,
		Method:      method,
		State:       StatePending,
		Input:       input,
		ScheduledAt: clock.Now(),
	}
}
