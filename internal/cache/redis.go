package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Verify interface compliance
var _ Cache = (*Redis)(nil)

const keyPrefix = "nyaya:scrape:"

// Redis stores entries with a server-side TTL so expiry needs no local
// clock. A redis error on read degrades to a cache miss.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a redis-backed cache with the given TTL.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		// redis.Nil and an unreachable redis are both a miss; the caller refetches
		return "", false
	}
	return val, true
}

func (r *Redis) Put(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, keyPrefix+key, value, r.ttl).Err()
}
