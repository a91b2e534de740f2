package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueIsFIFO(t *testing.T) {
	ctx := context.Background()
	q := New()
	var next int
	pushed := 0
	// interleave pushes and pulls so that the ring buffer wraps and grows
	for round := 1; round <= 6; round++ {
		for i := 0; i < round+1; i++ {
			require.NoError(t, q.Push(ctx, &Task{Depth: pushed}))
			pushed++
		}
		for i := 0; i < round; i++ {
			task, err := q.Pull(ctx)
			require.NoError(t, err)
			require.NotNil(t, task)
			assert.Equal(t, next, task.Depth)
			next++
		}
	}
	assert.Equal(t, pushed-next, q.Count())
	for q.Count() > 0 {
		task, err := q.Pull(ctx)
		require.NoError(t, err)
		assert.Equal(t, next, task.Depth)
		next++
	}
	task, err := q.Pull(ctx)
	assert.NoError(t, err)
	assert.Nil(t, task)
}

func TestQueueHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := New()
	require.NoError(t, q.Push(ctx, &Task{}))
	cancel()
	assert.Equal(t, context.Canceled, q.Push(ctx, &Task{}))
	_, err := q.Pull(ctx)
	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, 1, q.Count())
}
