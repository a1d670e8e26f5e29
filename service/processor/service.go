package processor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/viant/alds/model/run"
	"github.com/viant/alds/policy"
	"github.com/viant/alds/service/dao"
	"github.com/viant/alds/service/executor"
	"github.com/viant/alds/service/messaging"
	"github.com/viant/alds/tracing"
)

// Config represents processor configuration
type Config struct {
	// WorkerCount is the number of workers processing runs
	WorkerCount int
}

// DefaultConfig returns the default processor configuration
func DefaultConfig() Config {
	return Config{WorkerCount: 1}
}

// Service executes runs taken from a message queue
type Service struct {
	config   Config
	runDAO   dao.Service[string, run.Run]
	queue    messaging.Queue[run.Run]
	executor executor.Service

	workers  []*worker
	workerWg sync.WaitGroup
	mux      sync.Mutex
}

type worker struct {
	id       int
	service  *Service
	ctx      context.Context
	cancelFn context.CancelFunc
}

// New creates a new processor service
func New(options ...Option) (*Service, error) {
	s := &Service{config: DefaultConfig()}
	for _, opt := range options {
		opt(s)
	}
	if s.executor == nil {
		return nil, fmt.Errorf("executor is required")
	}
	if s.queue == nil {
		return nil, fmt.Errorf("message queue is required")
	}
	if s.runDAO == nil {
		return nil, fmt.Errorf("runDAO service is required")
	}
	if s.config.WorkerCount <= 0 {
		s.config.WorkerCount = DefaultConfig().WorkerCount
	}
	return s, nil
}

// Start begins consuming the queue; calling Start on a started service is a no-op
func (s *Service) Start(ctx context.Context) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if len(s.workers) > 0 {
		return nil
	}
	for i := 0; i < s.config.WorkerCount; i++ {
		workerCtx, cancel := context.WithCancel(ctx)
		w := &worker{
			id:       i,
			service:  s,
			ctx:      workerCtx,
			cancelFn: cancel,
		}
		s.workers = append(s.workers, w)
		s.workerWg.Add(1)
		go w.run()
	}
	return nil
}

// Submit stores the run as pending and publishes it for the workers. The
// policy carried by ctx travels with the run.
func (s *Service) Submit(ctx context.Context, aRun *run.Run) error {
	if p := policy.FromContext(ctx); p != nil && aRun.Policy == nil {
		aRun.Policy = policy.ToConfig(p)
	}
	aRun.State = run.StatePending
	if err := s.runDAO.Save(ctx, aRun); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	if err := s.queue.Publish(ctx, aRun); err != nil {
		return fmt.Errorf("failed to publish run %v: %w", aRun.ID, err)
	}
	return nil
}

func (w *worker) run() {
	defer w.service.workerWg.Done()
	for {
		msg, err := w.service.queue.Consume(w.ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || w.ctx.Err() != nil {
				return
			}
			time.Sleep(100 * time.Millisecond)
			continue
		}
		if msg == nil {
			continue
		}
		if pErr := w.service.processMessage(w.ctx, msg); pErr != nil {
			log.Printf("worker %d: failed to process message: %v", w.id, pErr)
		}
	}
}

// processMessage executes a single queued run
func (s *Service) processMessage(ctx context.Context, message messaging.Message[run.Run]) (err error) {
	aRun := message.T()
	ctx, span := tracing.StartSpan(ctx, "processor.run "+aRun.Action(), "CONSUMER")
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]string{"run.id": aRun.ID})

	if aRun.Policy != nil {
		ctx = policy.WithPolicy(ctx, policy.FromConfig(aRun.Policy))
	}
	if execErr := s.executor.Execute(ctx, aRun); execErr != nil {
		log.Printf("run %v (%v) failed: %v", aRun.ID, aRun.Action(), execErr)
	}
	if err = s.runDAO.Save(ctx, aRun); err != nil {
		return message.Nack(fmt.Errorf("failed to save run %v: %w", aRun.ID, err))
	}
	return message.Ack()
}

// Wait polls the run store until the run reaches a terminal state or timeout elapses
func (s *Service) Wait(ctx context.Context, runID string, timeout time.Duration) (*run.Run, error) {
	deadline := time.Now().Add(timeout)
	for {
		aRun, err := s.runDAO.Load(ctx, runID)
		if err != nil {
			return nil, err
		}
		if aRun.State.IsTerminal() {
			return aRun, nil
		}
		if time.Now().After(deadline) {
			return aRun, fmt.Errorf("timeout waiting for run %q", runID)
		}
		select {
		case <-ctx.Done():
			return aRun, ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}
}

// Shutdown stops all workers and waits for them to finish
func (s *Service) Shutdown() {
	s.mux.Lock()
	workers := s.workers
	s.workers = nil
	s.mux.Unlock()
	for _, w := range workers {
		w.cancelFn()
	}
	s.workerWg.Wait()
}
