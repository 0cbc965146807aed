package queue

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRequest_Scheduled(t *testing.T) {
	assert.True(t, NewRunRequest(nil).Scheduled())

	id := uuid.New()
	r := NewRunRequest(&id)
	assert.False(t, r.Scheduled())
	assert.NotEqual(t, uuid.Nil, r.ID)
}

func TestForward(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan []byte)
	out := make(chan RunRequest, 1)

	go forward(ctx, in, out)

	userID := uuid.New()
	body, err := json.Marshal(NewRunRequest(&userID))
	require.NoError(t, err)

	in <- []byte("not json")
	in <- body

	select {
	case msg := <-out:
		require.NotNil(t, msg.UserID)
		assert.Equal(t, userID, *msg.UserID)
	case <-time.After(time.Second):
		t.Fatal("run request was not forwarded")
	}
}

func TestForward_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		forward(ctx, make(chan []byte), make(chan RunRequest))
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("forward did not stop")
	}
}

func TestTopology(t *testing.T) {
	queues := topology()
	require.Len(t, queues, 3)

	assert.Equal(t, DLQName, queues[0].name)

	byName := map[string]runQueue{}
	for _, q := range queues {
		byName[q.name] = q
	}

	assert.Nil(t, byName[DLQName].args())

	retryArgs := byName[RetryQueueName].args()
	assert.Equal(t, MainQueueName, retryArgs["x-dead-letter-routing-key"])
	assert.Equal(t, int32(5000), retryArgs["x-message-ttl"])

	mainArgs := byName[MainQueueName].args()
	assert.Equal(t, DLQName, mainArgs["x-dead-letter-routing-key"])
	assert.NotContains(t, mainArgs, "x-message-ttl")
}
