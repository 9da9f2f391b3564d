package subscriber

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Westerntf/driplypay-v2-sub002/config"
	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"github.com/Westerntf/driplypay-v2-sub002/internal/retry"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type dlqPublisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Handler processes one message value. Returning an error wrapped with
// Permanent sends the message to the dead-letter topic without retrying.
type Handler func(ctx context.Context, topic string, value []byte) error

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

type KafkaConsumer struct {
	Readers      []messageReader
	DLQPublisher dlqPublisher
	DLQTopic     string
	RetryConfig  config.RetryConfig
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	publisher dlqPublisher,
	dlqTopic string,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]messageReader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: publisher,
		DLQTopic:     dlqTopic,
		RetryConfig:  retry.WithDefaults(retryConfig),
	}
}

// Listen consumes every reader until ctx is cancelled. Offsets are
// committed only after a message was handled or dead-lettered.
func (c *KafkaConsumer) Listen(ctx context.Context, handler Handler) {
	var wg sync.WaitGroup
	for _, reader := range c.Readers {
		wg.Add(1)
		go func(r messageReader) {
			defer wg.Done()
			c.consume(ctx, r, handler)
		}(reader)
	}
	wg.Wait()
}

func (c *KafkaConsumer) consume(ctx context.Context, r messageReader, handler Handler) {
	for {
		msg, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logrus.Errorf("Kafka fetch error: %v", err)
			if !sleep(ctx, c.RetryConfig.BaseDelay) {
				return
			}
			continue
		}

		if !c.processMessage(ctx, msg, handler) {
			return
		}

		if err := r.CommitMessages(ctx, msg); err != nil {
			logrus.WithFields(logrus.Fields{
				"topic":  msg.Topic,
				"offset": msg.Offset,
			}).Errorf("Failed to commit message: %v", err)
		}
	}
}

// processMessage reports false when ctx was cancelled before the message
// reached a final state.
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler Handler) bool {
	var lastErr error
	attempts := 0

	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		attempts++
		err := handler(ctx, msg.Topic, msg.Value)
		if err == nil {
			return true
		}
		lastErr = err

		if IsPermanent(err) || attempt == c.RetryConfig.MaxAttempts-1 {
			break
		}

		backoff := retry.Backoff(c.RetryConfig, attempt)
		logrus.Warnf("Handler error, attempt %d/%d: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err, backoff)
		if !sleep(ctx, backoff) {
			return false
		}
	}

	logrus.WithFields(logrus.Fields{
		"topic":    msg.Topic,
		"key":      string(msg.Key),
		"attempts": attempts,
	}).Errorf("Message failed: %v", lastErr)

	if c.DLQPublisher != nil {
		dlqMessage := models.DLQMessage{
			OriginalTopic: msg.Topic,
			Key:           string(msg.Key),
			Value:         string(msg.Value),
			Timestamp:     time.Now().UTC(),
			Attempts:      attempts,
			LastError:     lastErr.Error(),
		}
		if err := c.DLQPublisher.Publish(ctx, c.DLQTopic, dlqMessage); err != nil {
			logrus.Errorf("Failed to send message to DLQ: %v", err)
		} else {
			logrus.Infof("Message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
		}
	}
	return true
}

func (c *KafkaConsumer) Close() error {
	var firstErr error
	for _, r := range c.Readers {
		if err := r.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}
