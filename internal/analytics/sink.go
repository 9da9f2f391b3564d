package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// KafkaSink appends tip events to the analytics stream instead of writing
// analytics rows inline. The projection worker turns them into rows.
type KafkaSink struct {
	publisher Publisher
	topic     string
	timeout   time.Duration
}

func NewKafkaSink(publisher Publisher, topic string, timeout time.Duration) *KafkaSink {
	return &KafkaSink{
		publisher: publisher,
		topic:     topic,
		timeout:   timeout,
	}
}

func (s *KafkaSink) Append(ctx context.Context, event models.TipReceivedEvent) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if err := s.publisher.Publish(ctx, s.topic, event); err != nil {
		return fmt.Errorf("publishing %s for session %s: %w", models.EventTypeTipReceived, event.SessionID, err)
	}
	return nil
}
