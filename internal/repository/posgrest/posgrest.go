package posgrest

import (
	"context"

	"gorm.io/gorm"
)

// repository is a generic GORM-based repository implementation.
// It provides the read and create operations shared by every entity type T.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// GetBy retrieves entities matching a specific field value.
// The key parameter is a where clause such as "user_id = ?".
func (r *repository[T]) GetBy(ctx context.Context, key string, value interface{}) (*[]T, error) {
	var entity []T
	if err := r.db.WithContext(ctx).Where(key, value).Find(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// FindRecent returns up to limit entities matching the clause, newest first.
func (r *repository[T]) FindRecent(ctx context.Context, key string, value interface{}, limit int) ([]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).
		Where(key, value).
		Order("created_at DESC").
		Limit(limit).
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}
