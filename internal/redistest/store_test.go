package redistest

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreExpiry(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute).Err())
	got, err := s.Get(ctx, "k").Result()
	require.NoError(t, err)
	assert.Equal(t, "v", got)
	assert.Equal(t, time.Minute, s.TTLOf("k"))

	s.Advance(time.Minute)
	_, err = s.Get(ctx, "k").Result()
	assert.ErrorIs(t, err, redis.Nil)
	assert.False(t, s.Has("k"))
}

func TestStoreIncrKeepsExpiry(t *testing.T) {
	s := New()
	ctx := context.Background()

	n, err := s.Incr(ctx, "c").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.True(t, s.Expire(ctx, "c", time.Minute).Val())

	s.Advance(30 * time.Second)
	n, err = s.Incr(ctx, "c").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, 30*time.Second, s.TTLOf("c"))

	assert.False(t, s.Expire(ctx, "missing", time.Minute).Val())
}
