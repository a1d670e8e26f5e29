package alds

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/alds/extension"
	"github.com/viant/alds/model/run"
	"github.com/viant/alds/policy"
	"github.com/viant/alds/progress"
	"github.com/viant/alds/service/action/postfix"
	"github.com/viant/alds/service/action/scheduler"
	"github.com/viant/alds/service/dao"
	"github.com/viant/alds/service/executor"
	"github.com/viant/alds/service/processor"
	"github.com/viant/alds/tracing"
)

// Wait blocks until a submitted run completes or timeout elapses
type Wait func(ctx context.Context, timeout time.Duration) (*run.Run, error)

// Runtime executes action runs and keeps their history
type Runtime struct {
	config     *Config
	actions    *extension.Actions
	executor   executor.Service
	processor  *processor.Service
	runDAO     dao.Service[string, run.Run]
	policy     *policy.Policy
	onProgress func(progress.Snapshot)
	// subscription delivers run events to the WithRunListener handler
	subscription interface{ Stop() }
}

func (r *Runtime) withPolicy(ctx context.Context) context.Context {
	if r.policy != nil && policy.FromContext(ctx) == nil {
		return policy.WithPolicy(ctx, r.policy)
	}
	return ctx
}

// Call executes service method synchronously and records the run. The
// returned run is never nil; the error is the action error, if any.
func (r *Runtime) Call(ctx context.Context, service, method string, input interface{}) (aRun *run.Run, err error) {
	aRun = run.New(service, method, input)
	ctx, span := tracing.StartSpan(ctx, aRun.Action(), "INTERNAL")
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]string{"run.id": aRun.ID})

	ctx = r.withPolicy(ctx)
	if service == scheduler.Name {
		ctx, _ = progress.WithNewTracker(ctx, aRun.ID, aRun.Action(), r.onProgress)
	}
	err = r.executor.Execute(ctx, aRun)
	if saveErr := r.runDAO.Save(ctx, aRun); saveErr != nil && err == nil {
		err = fmt.Errorf("failed to save run %v: %w", aRun.ID, saveErr)
	}
	return aRun, err
}

// Evaluate evaluates a postfix expression
func (r *Runtime) Evaluate(ctx context.Context, expression string) (int64, error) {
	aRun, err := r.Call(ctx, postfix.Name, "evaluate", &postfix.Input{Expression: expression})
	if err != nil {
		return 0, err
	}
	output, ok := aRun.Output.(*postfix.Output)
	if !ok {
		return 0, fmt.Errorf("unexpected %v output: %T", aRun.Action(), aRun.Output)
	}
	return output.Result, nil
}

// Schedule runs workload round-robin; a zero quantum uses the configured one
func (r *Runtime) Schedule(ctx context.Context, workload *scheduler.Workload) ([]scheduler.Process, error) {
	if workload == nil {
		return nil, fmt.Errorf("workload was nil")
	}
	quantum := workload.Quantum
	if quantum == 0 {
		quantum = r.config.Scheduler.Quantum
	}
	aRun, err := r.Call(ctx, scheduler.Name, "schedule", &scheduler.Input{Quantum: quantum, Processes: workload.Processes})
	if err != nil {
		return nil, err
	}
	output, ok := aRun.Output.(*scheduler.Output)
	if !ok {
		return nil, fmt.Errorf("unexpected %v output: %T", aRun.Action(), aRun.Output)
	}
	return output.Completed, nil
}

// LoadWorkload loads a workload from URL
func (r *Runtime) LoadWorkload(ctx context.Context, URL string, options ...storage.Option) (*scheduler.Workload, error) {
	return scheduler.LoadWorkload(ctx, afs.New(), URL, options...)
}

// Submit queues service method for the processor workers; Start must be called first
func (r *Runtime) Submit(ctx context.Context, service, method string, input interface{}) (*run.Run, Wait, error) {
	if r.processor == nil {
		return nil, nil, fmt.Errorf("processor was not initialised")
	}
	aRun := run.New(service, method, input)
	ctx, span := tracing.StartSpan(ctx, "submit "+aRun.Action(), "PRODUCER")
	span.WithAttributes(map[string]string{"run.id": aRun.ID})
	err := r.processor.Submit(r.withPolicy(ctx), aRun)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, nil, err
	}
	wait := func(ctx context.Context, timeout time.Duration) (*run.Run, error) {
		return r.processor.Wait(ctx, aRun.ID, timeout)
	}
	return aRun, wait, nil
}

// Start starts processor workers
func (r *Runtime) Start(ctx context.Context) error {
	if r.processor == nil {
		return fmt.Errorf("processor was not initialised")
	}
	return r.processor.Start(ctx)
}

// Shutdown stops processor workers and the run listener
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r.processor != nil {
		r.processor.Shutdown()
	}
	if r.subscription != nil {
		r.subscription.Stop()
		r.subscription = nil
	}
	return nil
}

// Run returns a run
func (r *Runtime) Run(ctx context.Context, id string) (*run.Run, error) {
	return r.runDAO.Load(ctx, id)
}

// Runs returns a list of runs; parameters filter by State or Service
func (r *Runtime) Runs(ctx context.Context, parameters ...*dao.Parameter) ([]*run.Run, error) {
	return r.runDAO.List(ctx, parameters...)
}
