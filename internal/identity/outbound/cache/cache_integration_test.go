//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/secureauth/internal/identity/usecase"
	"github.com/shandysiswandi/secureauth/internal/pkg/goerror"
	"github.com/shandysiswandi/secureauth/internal/pkg/instrument"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/redis"
)

func newCache(t *testing.T) *Cache {
	t.Helper()
	ctx := context.Background()

	container, err := redis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	opts, err := goredis.ParseURL(uri)
	require.NoError(t, err)

	client := goredis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	return NewCache(client, instrument.NewNoop())
}

func TestCache_Challenge(t *testing.T) {
	ctx := context.Background()
	c := newCache(t)

	_, err := c.GetChallenge(ctx, "missing")
	require.ErrorIs(t, err, goerror.ErrNotFound)

	want := usecase.LoginChallenge{
		UserID:    1,
		Username:  "alice",
		Email:     "alice@x.com",
		ExpiresAt: time.Date(2025, 1, 1, 10, 10, 0, 0, time.UTC),
	}
	require.NoError(t, c.SaveChallenge(ctx, "digest", want, time.Minute))

	got, err := c.GetChallenge(ctx, "digest")
	require.NoError(t, err)
	assert.Equal(t, want, *got)

	require.NoError(t, c.DeleteChallenge(ctx, "digest"))
	_, err = c.GetChallenge(ctx, "digest")
	require.ErrorIs(t, err, goerror.ErrNotFound)
}

func TestCache_ChallengeExpires(t *testing.T) {
	ctx := context.Background()
	c := newCache(t)

	require.NoError(t, c.SaveChallenge(ctx, "digest", usecase.LoginChallenge{UserID: 1}, time.Second))
	assert.Eventually(t, func() bool {
		_, err := c.GetChallenge(ctx, "digest")
		return err != nil
	}, 5*time.Second, 100*time.Millisecond)
}

func TestCache_RevokeSession(t *testing.T) {
	ctx := context.Background()
	c := newCache(t)

	revoked, err := c.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, c.RevokeSession(ctx, "jti-1", time.Minute))

	revoked, err = c.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}
