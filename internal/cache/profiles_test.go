package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/Westerntf/driplypay-v2-sub002/internal/cache"
	"github.com/Westerntf/driplypay-v2-sub002/internal/checkout/mocks"
	"github.com/Westerntf/driplypay-v2-sub002/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestProfiles_ReadThrough(t *testing.T) {
	mr, client := setupTestRedis(t)
	source := mocks.NewMockProfileFinder(t)
	profiles := cache.NewProfiles(client, source, time.Minute)
	ctx := context.Background()

	source.EXPECT().
		GetByUsername(ctx, "alice").
		Return(&models.Profile{ID: "p1", UserID: "u1", Username: "alice", TotalEarnings: 900}, nil).
		Once()

	first, err := profiles.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(900), first.TotalEarnings)
	assert.True(t, mr.Exists("profile:username:alice"))

	second, err := profiles.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", second.UserID)
	assert.Equal(t, int64(0), second.TotalEarnings)
}

func TestProfiles_ExpiryAndInvalidate(t *testing.T) {
	mr, client := setupTestRedis(t)
	source := mocks.NewMockProfileFinder(t)
	profiles := cache.NewProfiles(client, source, time.Minute)
	ctx := context.Background()

	source.EXPECT().
		GetByUsername(ctx, "alice").
		Return(&models.Profile{UserID: "u1", Username: "alice"}, nil).
		Times(3)

	_, err := profiles.GetByUsername(ctx, "alice")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	_, err = profiles.GetByUsername(ctx, "alice")
	require.NoError(t, err)

	require.NoError(t, profiles.Invalidate(ctx, "alice"))
	_, err = profiles.GetByUsername(ctx, "alice")
	require.NoError(t, err)
}

func TestProfiles_NotFoundIsNotCached(t *testing.T) {
	mr, client := setupTestRedis(t)
	source := mocks.NewMockProfileFinder(t)
	profiles := cache.NewProfiles(client, source, time.Minute)
	ctx := context.Background()

	source.EXPECT().GetByUsername(ctx, "ghost").Return(nil, models.ErrProfileNotFound).Twice()

	for i := 0; i < 2; i++ {
		_, err := profiles.GetByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, models.ErrProfileNotFound)
	}
	assert.False(t, mr.Exists("profile:username:ghost"))
}

func TestProfiles_FallsBackWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	source := mocks.NewMockProfileFinder(t)
	profiles := cache.NewProfiles(client, source, time.Minute)
	ctx := context.Background()

	source.EXPECT().GetByUsername(ctx, "alice").Return(&models.Profile{UserID: "u1", Username: "alice"}, nil).Once()

	p, err := profiles.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
}
