package progress

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress_Update(t *testing.T) {
	var changes []Snapshot
	ctx, tracker := WithNewTracker(context.Background(), "r1", "scheduler.schedule", func(s Snapshot) {
		changes = append(changes, s)
	})

	UpdateCtx(ctx, Delta{Total: 2, Pending: 2})
	UpdateCtx(ctx, Delta{Slices: 1, Requeued: 1})
	UpdateCtx(ctx, Delta{Slices: 1, Completed: 1, Pending: -1})

	snapshot, ok := GetSnapshot(ctx)
	require.True(t, ok)
	assert.Equal(t, "r1", snapshot.RunID)
	assert.Equal(t, 2, snapshot.Total)
	assert.Equal(t, 1, snapshot.Completed)
	assert.Equal(t, 1, snapshot.Pending)
	assert.Equal(t, 2, snapshot.Slices)
	assert.Equal(t, 1, snapshot.Requeued)
	assert.Len(t, changes, 3)
	assert.Equal(t, snapshot, tracker.Snapshot())

	// delivered snapshots do not follow later updates
	assert.Equal(t, 2, changes[0].Pending)
	assert.Equal(t, 0, changes[0].Slices)
	assert.Equal(t, 1, changes[1].Slices)
}

func TestProgress_Concurrent(t *testing.T) {
	tracker := &Progress{}
	var total int
	var mux sync.Mutex
	tracker.OnChange(func(s Snapshot) {
		mux.Lock()
		total++
		mux.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tracker.Update(Delta{Slices: 1})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 800, tracker.Snapshot().Slices)
	assert.Equal(t, 800, total)
}

func TestProgress_NoTracker(t *testing.T) {
	ctx := context.Background()
	UpdateCtx(ctx, Delta{Total: 1})
	_, ok := GetSnapshot(ctx)
	assert.False(t, ok)

	var p *Progress
	p.Update(Delta{Total: 1})
	assert.Equal(t, Snapshot{}, p.Snapshot())
}
