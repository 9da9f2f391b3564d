package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Support is one settled tip. ProcessorSessionID is the natural dedup key:
// the schema carries a unique index on it.
type Support struct {
	ID                 string    `gorm:"primaryKey" json:"id"`
	UserID             string    `gorm:"index;not null" json:"user_id"`
	Amount             int64     `gorm:"not null" json:"amount"`
	Currency           string    `gorm:"not null" json:"currency"`
	Message            *string   `json:"message,omitempty"`
	IsAnonymous        bool      `gorm:"not null;default:false" json:"is_anonymous"`
	SupporterName      *string   `json:"supporter_name,omitempty"`
	ProcessorSessionID string    `gorm:"uniqueIndex;not null" json:"processor_session_id"`
	CreatedAt          time.Time `json:"created_at"`
}

func (s *Support) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

// Public returns a copy safe to show on a creator page.
func (s Support) Public() Support {
	if s.IsAnonymous {
		s.SupporterName = nil
	}
	s.ProcessorSessionID = ""
	return s
}
