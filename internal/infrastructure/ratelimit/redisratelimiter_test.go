package ratelimit

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestRedisRateLimiterAllowPerMinute(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{
		RequestsPerMinute: 5,
	}

	key := "otp:issue:a@example.com"

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(key, config)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(key, config)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")
}

func TestRedisRateLimiterAllowDifferentKeys(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{
		RequestsPerMinute: 2,
	}

	key1 := "otp:issue:a@example.com"
	key2 := "otp:issue:b@example.com"

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(key1, config)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(key1, config)
	require.NoError(t, err)
	assert.False(t, allowed, "key1 should be rate limited")

	allowed, err = limiter.Allow(key2, config)
	require.NoError(t, err)
	assert.True(t, allowed, "key2 should not be affected")
}

func TestRedisRateLimiterGetRemaining(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{
		RequestsPerMinute: 5,
	}

	key := "login:1.2.3.4"

	remaining, err := limiter.GetRemaining(key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(0), remaining)

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(key, config)
		require.NoError(t, err)
	}

	remaining, err = limiter.GetRemaining(key, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(3), remaining)
}

func TestRedisRateLimiterReset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{
		RequestsPerMinute: 2,
	}

	key := "login:1.2.3.4"

	for i := 0; i < 2; i++ {
		allowed, err := limiter.Allow(key, config)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(key, config)
	require.NoError(t, err)
	assert.False(t, allowed)

	err = limiter.Reset(key)
	require.NoError(t, err)

	allowed, err = limiter.Allow(key, config)
	require.NoError(t, err)
	assert.True(t, allowed, "should be allowed after reset")
}

func TestRedisRateLimiterZeroLimits(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)

	config := RateLimitConfig{}

	allowed, err := limiter.Allow("any-key", config)
	require.NoError(t, err)
	assert.True(t, allowed, "zero limits should allow all requests")
}
