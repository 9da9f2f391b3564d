package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Westerntf/driplypay-v2-sub002/internal/metrics"
	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"github.com/Westerntf/driplypay-v2-sub002/internal/subscriber"
	"github.com/sirupsen/logrus"
)

var ErrInvalidEvent = errors.New("invalid analytics event")

type EventWriter interface {
	Insert(ctx context.Context, event *models.AnalyticsEvent) (bool, error)
}

// Projector consumes the tip stream and writes one analytics row per
// settled session. Redelivered messages hit the idempotency key and are
// counted as duplicates.
type Projector struct {
	events EventWriter
	topic  string
}

func NewProjector(events EventWriter, topic string) *Projector {
	return &Projector{events: events, topic: topic}
}

func (p *Projector) HandleEvents(ctx context.Context, topic string, value []byte) error {
	if topic != p.topic {
		logrus.Warnf("Unknown topic: %s", topic)
		return nil
	}

	var evt models.TipReceivedEvent
	if err := json.Unmarshal(value, &evt); err != nil {
		metrics.AnalyticsProjectedTotal.WithLabelValues(models.EventTypeTipReceived, "invalid").Inc()
		return subscriber.Permanent(fmt.Errorf("%w: %v", ErrInvalidEvent, err))
	}
	if evt.SessionID == "" || evt.UserID == "" {
		metrics.AnalyticsProjectedTotal.WithLabelValues(models.EventTypeTipReceived, "invalid").Inc()
		return subscriber.Permanent(fmt.Errorf("%w: missing session_id or user_id", ErrInvalidEvent))
	}

	row := evt.ToAnalytics()
	inserted, err := p.events.Insert(ctx, &row)
	if err != nil {
		metrics.AnalyticsProjectedTotal.WithLabelValues(models.EventTypeTipReceived, "failed").Inc()
		return fmt.Errorf("projecting session %s: %w", evt.SessionID, err)
	}

	result := "inserted"
	if !inserted {
		result = "duplicate"
	}
	metrics.AnalyticsProjectedTotal.WithLabelValues(models.EventTypeTipReceived, result).Inc()

	logrus.WithFields(logrus.Fields{
		"session_id": evt.SessionID,
		"user_id":    evt.UserID,
		"result":     result,
	}).Debug("analytics event projected")
	return nil
}
