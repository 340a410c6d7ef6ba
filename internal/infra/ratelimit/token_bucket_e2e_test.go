//go:build e2e

package ratelimit_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-reservation/internal/infra/ratelimit"
	"hotel-reservation/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = c.Terminate(ctx)
	})

	addr, err := c.PortEndpoint(ctx, "6379/tcp", "")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(ctx).Err())
	return rdb
}

func TestTokenBucket_Redis(t *testing.T) {
	rdb := startRedis(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("success: denies after capacity and reports retry", func(t *testing.T) {
		tb := ratelimit.NewTokenBucket(rdb, config.RateLimitConfig{
			Capacity:       3,
			RefillTokens:   1,
			RefillInterval: time.Minute,
			Prefix:         "rl:e2e",
		}, logger)
		key := tb.Key("user", "alice", "route", "POST /api/bookings")

		for i := range 3 {
			d, err := tb.Allow(ctx, key)
			require.NoError(t, err)
			assert.True(t, d.Allowed, "request %d", i+1)
			assert.Equal(t, int64(2-i), d.Remaining)
		}

		d, err := tb.Allow(ctx, key)
		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Greater(t, d.RetryAfter, time.Duration(0))
		assert.LessOrEqual(t, d.RetryAfter, time.Minute)

		ttl, err := rdb.TTL(ctx, key).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})

	t.Run("success: callers have separate buckets", func(t *testing.T) {
		tb := ratelimit.NewTokenBucket(rdb, config.RateLimitConfig{
			Capacity:       1,
			RefillInterval: time.Minute,
			Prefix:         "rl:e2e:sep",
		}, logger)

		d, err := tb.Allow(ctx, tb.Key("user", "a"))
		require.NoError(t, err)
		assert.True(t, d.Allowed)

		d, err = tb.Allow(ctx, tb.Key("user", "b"))
		require.NoError(t, err)
		assert.True(t, d.Allowed)

		d, err = tb.Allow(ctx, tb.Key("user", "a"))
		require.NoError(t, err)
		assert.False(t, d.Allowed)
	})
}
