package main

import (
	"context"

	"github.com/Westerntf/driplypay-v2-sub002/config"
	"github.com/Westerntf/driplypay-v2-sub002/internal/cache"
	"github.com/Westerntf/driplypay-v2-sub002/internal/database"
	"github.com/Westerntf/driplypay-v2-sub002/internal/repository/posgrest"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create demo creators for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return seedLocal(cmd.Context(), cfg)
		},
	}
}

func seedLocal(ctx context.Context, cfg *config.Config) error {
	db, err := cfg.DB.GormConnect()
	if err != nil {
		return err
	}
	defer closeDB(db)

	usernames, err := database.SeedProfiles(db)
	if err != nil {
		return err
	}

	profiles, closeCache := profileCache(cfg, db)
	defer closeCache()
	for _, username := range usernames {
		if err := profiles.Invalidate(ctx, username); err != nil {
			logrus.Warnf("Could not invalidate cached profile %s: %v", username, err)
		}
	}
	return nil
}

func profileCache(cfg *config.Config, db *gorm.DB) (*cache.Profiles, func()) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	profiles := cache.NewProfiles(client, posgrest.NewProfileRepo(db), cfg.Redis.ProfileTTL)
	return profiles, func() { _ = client.Close() }
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
