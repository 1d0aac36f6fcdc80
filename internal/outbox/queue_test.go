package outbox

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryQueueRoundTrip(t *testing.T) {
	queue := NewMemoryQueue(4)
	ctx := context.Background()

	job := Job{ID: "j-1", DossierID: 9, Email: "a@corp.local", EnqueuedAt: time.Now()}
	require.NoError(t, queue.Enqueue(ctx, job))

	got, err := queue.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, job.DossierID, got.DossierID)
	assert.Equal(t, job.Email, got.Email)
}

func TestMemoryQueuePreservesOrder(t *testing.T) {
	queue := NewMemoryQueue(4)
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, Job{ID: "first"}))
	require.NoError(t, queue.Enqueue(ctx, Job{ID: "second"}))

	got, err := queue.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "first", got.ID)

	got, err = queue.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "second", got.ID)
}

func TestMemoryQueueDequeueTimesOutEmpty(t *testing.T) {
	queue := NewMemoryQueue(4)

	got, err := queue.Dequeue(context.Background(), 10*time.Millisecond)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryQueueRejectsWhenFull(t *testing.T) {
	queue := NewMemoryQueue(1)
	ctx := context.Background()

	require.NoError(t, queue.Enqueue(ctx, Job{ID: "j-1"}))
	assert.Error(t, queue.Enqueue(ctx, Job{ID: "j-2"}))
}

func TestMemoryQueueDequeueHonorsCancellation(t *testing.T) {
	queue := NewMemoryQueue(4)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := queue.Dequeue(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}
