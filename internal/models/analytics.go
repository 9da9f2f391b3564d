package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const EventTypeTipReceived = "tip_received"

// AnalyticsEvent is an append-only usage record. It is never read back by
// the settlement path.
type AnalyticsEvent struct {
	ID             string            `gorm:"primaryKey" json:"id"`
	UserID         string            `gorm:"index;not null" json:"user_id"`
	EventType      string            `gorm:"index;not null" json:"event_type"`
	Amount         int64             `json:"amount"`
	Metadata       datatypes.JSONMap `json:"metadata"`
	IdempotencyKey string            `gorm:"uniqueIndex;not null" json:"-"`
	CreatedAt      time.Time         `json:"created_at"`
}

func (e *AnalyticsEvent) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}

// TipReceivedKey is the idempotency key of the analytics row emitted for a
// settled checkout session.
func TipReceivedKey(sessionID string) string {
	return EventTypeTipReceived + ":" + sessionID
}
