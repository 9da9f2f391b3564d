package database_test

import (
	"testing"

	"github.com/Westerntf/driplypay-v2-sub002/internal/database"
	"github.com/Westerntf/driplypay-v2-sub002/internal/database/dbtest"
	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_UpIsIdempotentAndDownDropsSchema(t *testing.T) {
	db, url := dbtest.NewPostgres(t)

	require.NoError(t, database.MigrateUp(url))
	assert.True(t, db.Migrator().HasTable("supports"))
	assert.True(t, db.Migrator().HasIndex(&models.Support{}, "idx_supports_processor_session_id"))

	require.NoError(t, database.MigrateDown(url, 1))
	assert.False(t, db.Migrator().HasTable("supports"))
	assert.False(t, db.Migrator().HasTable("profiles"))

	require.NoError(t, database.MigrateUp(url))
	assert.True(t, db.Migrator().HasTable("profiles"))
}

func TestMigrateDown_RejectsNonPositiveSteps(t *testing.T) {
	err := database.MigrateDown("postgres://unused", 0)
	assert.Error(t, err)
}

func TestSeedProfiles_IsRepeatable(t *testing.T) {
	db, _ := dbtest.NewPostgres(t)

	usernames, err := database.SeedProfiles(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, usernames)

	_, err = database.SeedProfiles(db)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	var alice models.Profile
	require.NoError(t, db.Where("username = ?", "alice").First(&alice).Error)
	assert.Equal(t, "user_1", alice.UserID)
	assert.Equal(t, int64(0), alice.TotalEarnings)
}
