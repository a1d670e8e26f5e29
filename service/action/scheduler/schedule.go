package scheduler

import (
	"fmt"

	"github.com/viant/alds/container/queue"
	"github.com/viant/alds/internal/clock"
)

// Schedule drains ready in round-robin order and returns processes in
// completion order with Elapsed set to their completion time.
func Schedule(ready queue.Queue[Process], quantum int, listeners ...Listener) ([]Process, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantum, quantum)
	}
	var completed []Process
	simulated := &clock.Simulated{}
	for !ready.IsEmpty() {
		process, err := ready.Dequeue()
		if err != nil {
			return nil, err
		}
		if err = process.Validate(); err != nil {
			return nil, err
		}
		start := simulated.Now()
		simulated.Advance(quantum)
		slice := Slice{Process: process.Name, Start: start}
		if process.Remaining <= quantum {
			simulated.Rewind(quantum - process.Remaining)
			process.Remaining = 0
			process.Elapsed = simulated.Now()
			completed = append(completed, process)
			slice.Completed = true
		} else {
			process.Remaining -= quantum
			if err = ready.Enqueue(process); err != nil {
				return nil, fmt.Errorf("failed to requeue %v at %d: %w", process.Name, simulated.Now(), err)
			}
		}
		slice.End = simulated.Now()
		for _, listener := range listeners {
			listener(slice)
		}
	}
	return completed, nil
}
