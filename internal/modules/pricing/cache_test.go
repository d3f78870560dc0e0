package pricing

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farecast/internal/modules/features"
	"farecast/internal/modules/trip"
)

func TestVectorHash_Stable(t *testing.T) {
	v := features.Build(trip.Defaults())
	assert.Equal(t, vectorHash(v), vectorHash(v))
	assert.Len(t, vectorHash(v), 40)

	w := v
	w[4] = 2
	assert.NotEqual(t, vectorHash(v), vectorHash(w))
}

func TestRedisCache_RoundTrip(t *testing.T) {
	redisAddr := os.Getenv("FARE_TEST_REDIS_ADDR")
	if redisAddr == "" {
		t.Skip("FARE_TEST_REDIS_ADDR not set; skipping integration test")
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer rdb.Close()

	ctx := context.Background()
	cache := NewRedisCache(rdb, fmt.Sprintf("test_%d", time.Now().UnixNano()), time.Minute)
	v := features.Build(trip.Defaults())

	_, ok, err := cache.Get(ctx, v)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, v, 5.73))
	got, ok, err := cache.Get(ctx, v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5.73, got)

	ttl, err := rdb.TTL(ctx, cache.key(v)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
