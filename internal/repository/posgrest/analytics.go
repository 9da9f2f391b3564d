package posgrest

import (
	"context"

	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AnalyticsRepo appends analytics rows. Rows are keyed by their
// idempotency key so replays of the same event are absorbed.
type AnalyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// Insert reports whether a new row was written.
func (r *AnalyticsRepo) Insert(ctx context.Context, event *models.AnalyticsEvent) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "idempotency_key"}},
		DoNothing: true,
	}).Create(event)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// Append stores a tip_received event directly, without the stream.
func (r *AnalyticsRepo) Append(ctx context.Context, event models.TipReceivedEvent) error {
	row := event.ToAnalytics()
	_, err := r.Insert(ctx, &row)
	return err
}

func (r *AnalyticsRepo) CountByUser(ctx context.Context, userID, eventType string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.AnalyticsEvent{}).
		Where("user_id = ? AND event_type = ?", userID, eventType).
		Count(&n).Error
	return n, err
}
