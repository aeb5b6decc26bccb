package ratelimit

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisLimiter_AllowsWithinLimit(t *testing.T) {
	limiter := NewRedisLimiter(setupTestRedis(t))

	for i := 0; i < 3; i++ {
		result, err := limiter.Check(context.Background(), "ai:1", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, 5-(i+1), result.Remaining)
	}
}

func TestRedisLimiter_BlocksWhenExceeded(t *testing.T) {
	limiter := NewRedisLimiter(setupTestRedis(t))

	for i := 0; i < 3; i++ {
		result, err := limiter.Check(context.Background(), "ai:2", 2, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i < 2, result.Allowed)
	}
}

func TestRedisLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewRedisLimiter(setupTestRedis(t))

	result, err := limiter.Check(context.Background(), "ai:3", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed)

	result, err = limiter.Check(context.Background(), "ai:4", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestRedisLimiter_SlidingWindow(t *testing.T) {
	limiter := NewRedisLimiter(setupTestRedis(t))

	for i := 0; i < 2; i++ {
		result, err := limiter.Check(context.Background(), "ai:5", 2, 500*time.Millisecond)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	}

	time.Sleep(600 * time.Millisecond)

	result, err := limiter.Check(context.Background(), "ai:5", 2, 500*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestRedisLimiter_ZeroLimit(t *testing.T) {
	limiter := NewRedisLimiter(setupTestRedis(t))

	result, err := limiter.Check(context.Background(), "ai:6", 0, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
}

func TestRedisLimiter_Close(t *testing.T) {
	mr := miniredis.RunT(t)
	limiter := NewRedisLimiter(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	assert.NoError(t, limiter.Close())

	_, err := limiter.Check(context.Background(), "closed", 1, time.Minute)
	assert.Error(t, err)

	assert.NoError(t, NewRedisLimiter(nil).Close())
}
