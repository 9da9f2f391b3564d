package posgrest

import (
	"context"

	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"gorm.io/gorm"
)

type ProfileRepo struct {
	profiles *repository[models.Profile]
	supports *repository[models.Support]
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{
		profiles: New[models.Profile](db),
		supports: New[models.Support](db),
	}
}

func (r *ProfileRepo) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	found, err := r.profiles.GetBy(ctx, "username = ?", username)
	if err != nil {
		return nil, err
	}
	if found == nil || len(*found) == 0 {
		return nil, models.ErrProfileNotFound
	}
	profile := (*found)[0]
	return &profile, nil
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	found, err := r.profiles.GetBy(ctx, "user_id = ?", userID)
	if err != nil {
		return nil, err
	}
	if found == nil || len(*found) == 0 {
		return nil, models.ErrProfileNotFound
	}
	profile := (*found)[0]
	return &profile, nil
}

func (r *ProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	return r.profiles.Create(ctx, profile)
}

func (r *ProfileRepo) RecentSupports(ctx context.Context, userID string, limit int) ([]models.Support, error) {
	return r.supports.FindRecent(ctx, "user_id = ?", userID, limit)
}
