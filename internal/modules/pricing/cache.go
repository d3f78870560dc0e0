// README: Quote cache backed by Redis, keyed by model checksum and feature vector.
package pricing

import (
	"context"
	"crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"farecast/internal/modules/features"
)

const quoteKeyPrefix = "fare:quote:%s:%s"

type RedisCache struct {
	redis *redis.Client
	model string
	ttl   time.Duration
}

// NewRedisCache scopes keys to model so a new artifact never serves stale
// fares from an older one.
func NewRedisCache(client *redis.Client, model string, ttl time.Duration) *RedisCache {
	return &RedisCache{redis: client, model: model, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, v features.Vector) (float64, bool, error) {
	val, err := c.redis.Get(ctx, c.key(v)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	fare, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt cached quote %q: %w", val, err)
	}
	return fare, true, nil
}

func (c *RedisCache) Set(ctx context.Context, v features.Vector, fare float64) error {
	return c.redis.Set(ctx, c.key(v), strconv.FormatFloat(fare, 'g', -1, 64), c.ttl).Err()
}

func (c *RedisCache) key(v features.Vector) string {
	return fmt.Sprintf(quoteKeyPrefix, c.model, vectorHash(v))
}

func vectorHash(v features.Vector) string {
	h := sha1.New()
	var buf [8]byte
	for _, x := range v {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}
