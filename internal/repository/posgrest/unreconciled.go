package posgrest

import (
	"context"

	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UnreconciledRepo struct {
	db *gorm.DB
}

func NewUnreconciledRepo(db *gorm.DB) *UnreconciledRepo {
	return &UnreconciledRepo{db: db}
}

// Record stores the event once per processor event id.
func (r *UnreconciledRepo) Record(ctx context.Context, event *models.UnreconciledEvent) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "processor_event_id"}},
		DoNothing: true,
	}).Create(event).Error
}

func (r *UnreconciledRepo) ListOpen(ctx context.Context, limit int) ([]models.UnreconciledEvent, error) {
	var events []models.UnreconciledEvent
	err := r.db.WithContext(ctx).
		Where("resolved_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}
