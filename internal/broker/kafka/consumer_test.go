package kafka

import (
	"context"
	"testing"
	"time"

	"image-resizer/internal/broker"

	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward_ClosesOutWhenFetchingStops(t *testing.T) {
	raw := make(chan kafka.Message, 2)
	out := make(chan *broker.Message, 2)

	raw <- kafka.Message{Topic: "bucket-notifications", Partition: 1, Offset: 7, Key: []byte("k"), Value: []byte("v")}
	close(raw)

	done := make(chan struct{})
	go func() {
		forward(context.Background(), raw, out)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("forward did not return after raw was closed")
	}

	msg, ok := <-out
	require.True(t, ok)
	assert.Equal(t, &broker.Message{Topic: "bucket-notifications", Partition: 1, Offset: 7, Key: []byte("k"), Value: []byte("v")}, msg)

	_, ok = <-out
	assert.False(t, ok, "out must be closed, not fed empty messages")
}

func TestForward_StopsOnCancel(t *testing.T) {
	raw := make(chan kafka.Message)
	out := make(chan *broker.Message)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		forward(ctx, raw, out)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("forward did not return after cancel")
	}
}
