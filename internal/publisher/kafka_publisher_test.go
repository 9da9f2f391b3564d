package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Westerntf/driplypay-v2-sub002/config"
	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu       sync.Mutex
	failures int
	calls    int
	written  []kafka.Message
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls++
	if w.failures > 0 {
		w.failures--
		return errors.New("leader not available")
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newTestPublisher(w *fakeWriter, attempts int) *KafkaPublisher {
	return &KafkaPublisher{
		Writers: map[string]messageWriter{"tips.received": w},
		RetryConfig: config.RetryConfig{
			MaxAttempts: attempts,
			BaseDelay:   time.Millisecond,
			MaxDelay:    5 * time.Millisecond,
		},
	}
}

func TestPublish_KeyedMessage(t *testing.T) {
	w := &fakeWriter{}
	p := newTestPublisher(w, 3)

	event := models.TipReceivedEvent{SessionID: "cs_1", UserID: "u1", Amount: 500}
	require.NoError(t, p.Publish(context.Background(), "tips.received", event))

	require.Len(t, w.written, 1)
	assert.Equal(t, "u1", string(w.written[0].Key))

	var decoded models.TipReceivedEvent
	require.NoError(t, json.Unmarshal(w.written[0].Value, &decoded))
	assert.Equal(t, event.SessionID, decoded.SessionID)
}

func TestPublish_RetriesThenSucceeds(t *testing.T) {
	w := &fakeWriter{failures: 2}
	p := newTestPublisher(w, 3)

	require.NoError(t, p.Publish(context.Background(), "tips.received", map[string]string{"a": "b"}))
	assert.Equal(t, 3, w.calls)
	assert.Len(t, w.written, 1)
}

func TestPublish_GivesUpAfterMaxAttempts(t *testing.T) {
	w := &fakeWriter{failures: 10}
	p := newTestPublisher(w, 3)

	err := p.Publish(context.Background(), "tips.received", map[string]string{"a": "b"})
	assert.ErrorContains(t, err, "after 3 attempts")
	assert.Equal(t, 3, w.calls)
}

func TestPublish_StopsOnContextCancel(t *testing.T) {
	w := &fakeWriter{failures: 10}
	p := newTestPublisher(w, 5)
	p.RetryConfig.BaseDelay = time.Second
	p.RetryConfig.MaxDelay = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := p.Publish(ctx, "tips.received", map[string]string{"a": "b"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, w.calls)
}

func TestPublish_UnknownTopic(t *testing.T) {
	p := newTestPublisher(&fakeWriter{}, 1)

	err := p.Publish(context.Background(), "nope", "x")
	assert.ErrorContains(t, err, "no writer configured")
}

func TestClose_ClosesWriters(t *testing.T) {
	w := &fakeWriter{}
	p := newTestPublisher(w, 1)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}
