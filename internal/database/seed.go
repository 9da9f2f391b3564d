package database

import (
	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedProfiles creates demo creators for local development and returns
// their usernames. Existing rows are left untouched.
func SeedProfiles(db *gorm.DB) ([]string, error) {
	profiles := []models.Profile{
		{
			ID:          "p1",
			UserID:      "user_1",
			Username:    "alice",
			DisplayName: "Alice Makes Things",
		},
		{
			ID:          "p2",
			UserID:      "user_2",
			Username:    "bob",
			DisplayName: "Bob Streams",
		},
		{
			ID:          "p3",
			UserID:      "user_3",
			Username:    "carol",
			DisplayName: "Carol Draws",
		},
	}

	usernames := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		result := db.Where(models.Profile{ID: profile.ID}).FirstOrCreate(&profile)
		if result.Error != nil {
			return nil, result.Error
		}
		usernames = append(usernames, profile.Username)
	}

	logrus.Info("Profiles seeded successfully")
	return usernames, nil
}
