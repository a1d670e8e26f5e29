package run

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/alds/internal/clock"
)

func TestRun_Lifecycle(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	current := base
	clock.NowFunc = func() time.Time { return current }
	defer func() { clock.NowFunc = time.Now }()

	aRun := New("postfix", "evaluate", "1 2 +")
	assert.NotEmpty(t, aRun.ID)
	assert.Equal(t, StatePending, aRun.State)
	assert.Equal(t, "postfix.evaluate", aRun.Action())
	assert.Equal(t, time.Duration(0), aRun.Elapsed())

	aRun.Start()
	assert.Equal(t, StateRunning, aRun.State)
	assert.False(t, aRun.State.IsTerminal())

	current = base.Add(3 * time.Millisecond)
	aRun.Complete(nil)
	assert.Equal(t, StateCompleted, aRun.State)
	assert.True(t, aRun.State.IsTerminal())
	assert.Equal(t, 3*time.Millisecond, aRun.Elapsed())

	eCtx := aRun.Context("executed")
	assert.Equal(t, aRun.ID, eCtx.RunID)
	assert.Equal(t, "postfix", eCtx.Service)
	assert.Equal(t, "evaluate", eCtx.Method)
	assert.Equal(t, 3, eCtx.TimeTakenMs)
}

func TestRun_Failed(t *testing.T) {
	aRun := New("scheduler", "schedule", nil)
	aRun.Start()
	aRun.Complete(errors.New("queue is full"))
	assert.Equal(t, StateFailed, aRun.State)
	assert.Equal(t, "queue is full", aRun.Error)
}
