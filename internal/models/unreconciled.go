package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnreconciledEvent keeps authenticated processor events that could not be
// attributed to a creator so an operator can settle them by hand.
type UnreconciledEvent struct {
	ID               string     `gorm:"primaryKey" json:"id"`
	ProcessorEventID string     `gorm:"uniqueIndex;not null" json:"processor_event_id"`
	EventType        string     `gorm:"not null" json:"event_type"`
	Reason           string     `gorm:"not null" json:"reason"`
	Payload          string     `gorm:"type:text;not null" json:"payload"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (e *UnreconciledEvent) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return
}
