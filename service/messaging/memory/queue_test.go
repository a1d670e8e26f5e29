package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/alds/container"
)

type completion struct {
	Name    string
	Elapsed int
}

func TestQueue(t *testing.T) {
	config := DefaultConfig()
	config.RetryDelay = 10 * time.Millisecond
	queue := NewQueue[completion](config)

	ctx := context.Background()
	payload := completion{Name: "p2", Elapsed: 180}
	require.NoError(t, queue.Publish(ctx, &payload))
	assert.Equal(t, 1, queue.Size())

	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, message.ID())
	assert.Equal(t, 0, queue.Size())
	assert.Equal(t, payload, *message.T())

	assert.NoError(t, message.Ack())
	assert.Error(t, message.Ack(), "double ack should fail")
}

func TestQueueRetries(t *testing.T) {
	config := DefaultConfig()
	config.MaxRetries = 1
	config.RetryDelay = 10 * time.Millisecond
	queue := NewQueue[completion](config)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, queue.Publish(ctx, &completion{Name: "p1"}))

	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	firstID := message.ID()
	require.NoError(t, message.Nack(errors.New("listener failed")))

	message, err = queue.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, firstID, message.ID(), "redelivered message keeps its id")
	require.NoError(t, message.Nack(nil))

	assert.Equal(t, 0, queue.Size())
	assert.Equal(t, 1, queue.DLQSize())
}

func TestQueueNonBlocking(t *testing.T) {
	config := DefaultConfig()
	config.QueueBuffer = 1
	config.NonBlocking = true
	queue := NewQueue[completion](config)

	ctx := context.Background()
	require.NoError(t, queue.Publish(ctx, &completion{Name: "p1"}))
	err := queue.Publish(ctx, &completion{Name: "p2"})
	assert.ErrorIs(t, err, container.ErrFull)
	assert.Equal(t, 1, queue.Size())
}

func TestQueueContextCancellation(t *testing.T) {
	queue := NewQueue[completion](DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	payload := completion{Name: "p5"}
	assert.Error(t, queue.Publish(ctx, &payload))

	ctxWithTimeout, cancelTimeout := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancelTimeout()
	_, err := queue.Consume(ctxWithTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, queue.Publish(context.Background(), &payload))
	message, err := queue.Consume(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "p5", message.T().Name)
}
