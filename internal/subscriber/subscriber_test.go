package subscriber

import (
	"context"
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

// fakeReader serves queued messages and cancels the test context once the
// queue is drained.
type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []kafka.Message
	drained   context.CancelFunc
	closed    bool
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.queue) > 0 {
		msg := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()

	r.drained()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

type fakeDLQ struct {
	mu       sync.Mutex
	topic    string
	messages []models.DLQMessage
	err      error
}

func (d *fakeDLQ) Publish(ctx context.Context, topic string, message interface{}) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.topic = topic
	d.messages = append(d.messages, message.(models.DLQMessage))
	return d.err
}

func newTestConsumer(t *testing.T, msgs ...kafka.Message) (*KafkaConsumer, *fakeReader, *fakeDLQ, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	reader := &fakeReader{queue: msgs, drained: cancel}
	dlq := &fakeDLQ{}
	c := &KafkaConsumer{
		Readers:      []messageReader{reader},
		DLQPublisher: dlq,
		DLQTopic:     "tips.dlq",
		RetryConfig: config.RetryConfig{
			MaxAttempts: 3,
			BaseDelay:   time.Millisecond,
			MaxDelay:    2 * time.Millisecond,
		},
	}
	return c, reader, dlq, ctx
}

func msg(offset int64, value string) kafka.Message {
	return kafka.Message{Topic: "tips.received", Key: []byte("u1"), Offset: offset, Value: []byte(value)}
}

func TestListen_CommitsHandledMessages(t *testing.T) {
	c, reader, dlq, ctx := newTestConsumer(t, msg(1, "a"), msg(2, "b"))

	var seen []string
	c.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		assert.Equal(t, "tips.received", topic)
		seen = append(seen, string(value))
		return nil
	})

	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Len(t, reader.committed, 2)
	assert.Empty(t, dlq.messages)
}

func TestListen_RetriesUntilSuccess(t *testing.T) {
	c, reader, dlq, ctx := newTestConsumer(t, msg(1, "a"))

	calls := 0
	c.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		calls++
		if calls < 3 {
			return errors.New("db unavailable")
		}
		return nil
	})

	assert.Equal(t, 3, calls)
	assert.Len(t, reader.committed, 1)
	assert.Empty(t, dlq.messages)
}

func TestListen_DeadLettersAfterMaxAttempts(t *testing.T) {
	c, reader, dlq, ctx := newTestConsumer(t, msg(7, "a"))

	calls := 0
	c.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		calls++
		return errors.New("db unavailable")
	})

	assert.Equal(t, 3, calls)
	require.Len(t, dlq.messages, 1)
	assert.Equal(t, "tips.dlq", dlq.topic)
	assert.Equal(t, "tips.received", dlq.messages[0].OriginalTopic)
	assert.Equal(t, "u1", dlq.messages[0].Key)
	assert.Equal(t, "a", dlq.messages[0].Value)
	assert.Equal(t, 3, dlq.messages[0].Attempts)
	assert.Equal(t, "db unavailable", dlq.messages[0].LastError)
	assert.Len(t, reader.committed, 1)
}

func TestListen_PermanentErrorSkipsRetries(t *testing.T) {
	c, _, dlq, ctx := newTestConsumer(t, msg(1, "not json"))

	calls := 0
	c.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		calls++
		return Permanent(errors.New("undecodable"))
	})

	assert.Equal(t, 1, calls)
	require.Len(t, dlq.messages, 1)
	assert.Equal(t, 1, dlq.messages[0].Attempts)
}

func TestListen_DLQFailureStillCommits(t *testing.T) {
	c, reader, dlq, ctx := newTestConsumer(t, msg(1, "a"))
	dlq.err = errors.New("broker down")

	c.Listen(ctx, func(ctx context.Context, topic string, value []byte) error {
		return Permanent(errors.New("bad"))
	})

	assert.Len(t, reader.committed, 1)
}

func TestProcessMessage_CancelledDuringBackoff(t *testing.T) {
	c, _, dlq, _ := newTestConsumer(t)
	c.RetryConfig.BaseDelay = time.Second
	c.RetryConfig.MaxDelay = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := c.processMessage(ctx, msg(1, "a"), func(ctx context.Context, topic string, value []byte) error {
		return errors.New("db unavailable")
	})

	assert.False(t, done)
	assert.Empty(t, dlq.messages)
}

func TestPermanent(t *testing.T) {
	base := errors.New("boom")
	err := Permanent(base)

	assert.True(t, IsPermanent(err))
	assert.ErrorIs(t, err, base)
	assert.False(t, IsPermanent(base))
	assert.NoError(t, Permanent(nil))
}

func TestClose_ClosesReaders(t *testing.T) {
	c, reader, _, _ := newTestConsumer(t)

	require.NoError(t, c.Close())
	assert.True(t, reader.closed)
}
