package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/devconnector-api/internal/config"
	"github.com/redmonkez12/devconnector-api/internal/redistest"
)

func TestIPKey(t *testing.T) {
	assert.Equal(t, "ratelimit:login:10.0.0.1", ipKey("10.0.0.1", "login"))
}

func TestLimiterSurfacesRedisErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	l := NewLimiter(client, config.RateLimitConfig{MaxRequests: 1, Window: time.Minute})
	ctx := context.Background()

	exceeded, err := l.CheckIPRateLimitWithPurpose(ctx, "10.0.0.1", "login")
	assert.Error(t, err)
	assert.False(t, exceeded)

	assert.Error(t, l.RecordIPRequestWithPurpose(ctx, "10.0.0.1", "login"))
}

func TestLimiterFixedWindow(t *testing.T) {
	store := redistest.New()
	l := NewLimiter(store, config.RateLimitConfig{MaxRequests: 3, Window: 15 * time.Minute})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		exceeded, err := l.CheckIPRateLimitWithPurpose(ctx, "10.0.0.1", "login")
		require.NoError(t, err)
		assert.False(t, exceeded, "request %d", i+1)
		require.NoError(t, l.RecordIPRequestWithPurpose(ctx, "10.0.0.1", "login"))
		store.Advance(time.Minute)
	}

	exceeded, err := l.CheckIPRateLimitWithPurpose(ctx, "10.0.0.1", "login")
	require.NoError(t, err)
	assert.True(t, exceeded)

	// the window starts at the first request and is not extended by later ones
	assert.Equal(t, 12*time.Minute, store.TTLOf(ipKey("10.0.0.1", "login")))

	store.Advance(12 * time.Minute)

	exceeded, err = l.CheckIPRateLimitWithPurpose(ctx, "10.0.0.1", "login")
	require.NoError(t, err)
	assert.False(t, exceeded)
}

func TestLimiterCountsPerPurposeAndIP(t *testing.T) {
	store := redistest.New()
	l := NewLimiter(store, config.RateLimitConfig{MaxRequests: 1, Window: time.Minute})
	ctx := context.Background()

	require.NoError(t, l.RecordIPRequestWithPurpose(ctx, "10.0.0.1", "login"))

	exceeded, err := l.CheckIPRateLimitWithPurpose(ctx, "10.0.0.1", "login")
	require.NoError(t, err)
	assert.True(t, exceeded)

	exceeded, err = l.CheckIPRateLimitWithPurpose(ctx, "10.0.0.1", "register")
	require.NoError(t, err)
	assert.False(t, exceeded)

	exceeded, err = l.CheckIPRateLimitWithPurpose(ctx, "10.0.0.2", "login")
	require.NoError(t, err)
	assert.False(t, exceeded)
}
