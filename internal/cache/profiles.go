package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const profileKeyPrefix = "profile:username:"

type ProfileSource interface {
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
}

// Profiles is a read-through cache of creator profiles keyed by username.
// Cache errors fall back to the source. TotalEarnings is not cached since
// it changes with every settlement.
type Profiles struct {
	client *redis.Client
	source ProfileSource
	ttl    time.Duration
}

func NewProfiles(client *redis.Client, source ProfileSource, ttl time.Duration) *Profiles {
	return &Profiles{client: client, source: source, ttl: ttl}
}

func (p *Profiles) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	key := profileKeyPrefix + username

	raw, err := p.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var profile models.Profile
		if jsonErr := json.Unmarshal(raw, &profile); jsonErr == nil {
			return &profile, nil
		}
		logrus.WithField("key", key).Warn("Discarding undecodable cached profile")
	case !errors.Is(err, redis.Nil):
		logrus.WithError(err).Warn("Profile cache read failed")
	}

	profile, err := p.source.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	cached := *profile
	cached.TotalEarnings = 0
	if data, err := json.Marshal(cached); err == nil {
		if err := p.client.Set(ctx, key, data, p.ttl).Err(); err != nil {
			logrus.WithError(err).Warn("Profile cache write failed")
		}
	}
	return profile, nil
}

// Invalidate drops the cached profile for username.
func (p *Profiles) Invalidate(ctx context.Context, username string) error {
	return p.client.Del(ctx, profileKeyPrefix+username).Err()
}
