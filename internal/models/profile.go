package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the public creator profile together with its aggregate
// earnings. TotalEarnings is only ever changed by settlements.
type Profile struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"uniqueIndex;not null" json:"user_id"`
	Username      string    `gorm:"uniqueIndex;not null" json:"username"`
	DisplayName   string    `json:"display_name"`
	Bio           string    `json:"bio,omitempty"`
	TotalEarnings int64     `gorm:"not null;default:0" json:"total_earnings"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}
