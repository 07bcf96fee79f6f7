// Package cache provides the process-scoped TTL cache used by live
// augmentation. Entries are idempotent re-derivations of external pages, so
// a lost update between two racing writers is acceptable.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nyaya-ai/nyaya/config"
)

// Cache is a keyed store with a fixed TTL. An expired entry is a miss and
// must be refreshed by the caller; stale values are never returned.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Put(ctx context.Context, key, value string) error
}

// New builds the cache backend selected by configuration.
func New(ctx context.Context, cfg config.CacheConfig) (Cache, error) {
	switch cfg.Backend {
	case "inmemory":
		return NewMemory(cfg.TTL), nil
	case "redis":
		client, err := connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedis(client, cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", cfg.Backend)
	}
}

func connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.Timeout,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed (%s:%s): %w", cfg.Host, cfg.Port, err)
	}
	return client, nil
}

type entry struct {
	value     string
	createdAt time.Time
}

func (e entry) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.createdAt) >= ttl
}
