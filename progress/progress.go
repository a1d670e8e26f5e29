package progress

import (
	"context"
	"sync"
	"time"

	"github.com/viant/alds/internal/clock"
)

// Delta represents an incremental counter change. Fields are signed and can
// be either positive (increment) or negative (decrement).
type Delta struct {
	Total     int
	Completed int
	Pending   int
	Slices    int
	Requeued  int
}

// Snapshot holds the counters of a single run at one point in time. It
// carries no lock and can be passed by value.
type Snapshot struct {
	RunID     string
	Action    string
	StartedAt time.Time

	Total     int
	Completed int
	Pending   int
	Slices    int
	Requeued  int
}

// Progress keeps aggregated counters of a single run. It is safe for
// concurrent use.
type Progress struct {
	mu       sync.Mutex
	state    Snapshot
	onChange func(Snapshot)
}

// Update applies the supplied delta. The onChange callback, if any, is
// invoked with a snapshot outside the critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.state.Total += d.Total
	p.state.Completed += d.Completed
	p.state.Pending += d.Pending
	p.state.Slices += d.Slices
	p.state.Requeued += d.Requeued
	snapshot := p.state
	cb := p.onChange
	p.mu.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns the current counters.
func (p *Progress) Snapshot() Snapshot {
	if p == nil {
		return Snapshot{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// OnChange registers a callback invoked after every Update; nil disables it.
func (p *Progress) OnChange(cb func(Snapshot)) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.onChange = cb
	p.mu.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new tracker, embeds it in a derived context and
// returns both.
func WithNewTracker(ctx context.Context, runID, action string, onChange func(Snapshot)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		state:    Snapshot{RunID: runID, Action: action, StartedAt: clock.Now()},
		onChange: onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// GetSnapshot combines FromContext and Snapshot.
func GetSnapshot(ctx context.Context) (Snapshot, bool) {
	if tr, ok := FromContext(ctx); ok {
		return tr.Snapshot(), true
	}
	return Snapshot{}, false
}

// UpdateCtx applies the delta to the tracker carried by ctx, if any.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
