package posgrest

import (
	"context"

	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"github.com/Westerntf/driplypay-v2-sub002/internal/settlement"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettlementStore writes support records and balances. Every call to
// Atomically runs inside one database transaction.
type SettlementStore struct {
	db *gorm.DB
}

func NewSettlementStore(db *gorm.DB) *SettlementStore {
	return &SettlementStore{db: db}
}

func (s *SettlementStore) Atomically(ctx context.Context, fn func(settlement.LedgerStore, settlement.BalanceStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore := &SettlementStore{db: tx}
		return fn(txStore, txStore)
	})
}

// InsertIfAbsent relies on the unique index on processor_session_id. A
// conflicting row leaves RowsAffected at zero.
func (s *SettlementStore) InsertIfAbsent(ctx context.Context, record *models.Support) (bool, error) {
	tx := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "processor_session_id"}},
		DoNothing: true,
	}).Create(record)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (s *SettlementStore) IncrementEarnings(ctx context.Context, userID string, amount int64) error {
	tx := s.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ?", userID).
		UpdateColumn("total_earnings", gorm.Expr("total_earnings + ?", amount))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrProfileNotFound
	}
	return nil
}
