package brackets

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesRegisteredClients(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run()
	defer hub.Stop()

	client := &Client{Hub: hub, Send: make(chan []byte, 4)}
	hub.Register <- client
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Publish(MessageStandingsUpdated, []int{1, 2})

	select {
	case raw := <-client.Send:
		var msg struct {
			Type    string `json:"type"`
			Payload []int  `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, MessageStandingsUpdated, msg.Type)
		assert.Equal(t, []int{1, 2}, msg.Payload)
	case <-time.After(time.Second):
		t.Fatal("message was not delivered")
	}

	hub.Unregister <- client
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-client.Send
	assert.False(t, open, "send channel should be closed on unregister")
}

func TestHub_PublishWithoutClientsDoesNotBlock(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Run is not started; Publish must drop once the queue is full.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish(MessageStandingsUpdated, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked")
	}
}
