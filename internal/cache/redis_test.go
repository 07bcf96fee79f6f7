package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedis(client, time.Hour), mr, func() {
		client.Close()
		mr.Close()
	}
}

func TestRedisPutGet(t *testing.T) {
	c, _, cleanup := setupTestRedis(t)
	defer cleanup()
	ctx := context.Background()

	if _, ok := c.Get(ctx, "ecourts_info"); ok {
		t.Fatal("expected miss on empty cache")
	}
	if err := c.Put(ctx, "ecourts_info", "eCourts Services"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	val, ok := c.Get(ctx, "ecourts_info")
	if !ok || val != "eCourts Services" {
		t.Fatalf("Get = (%q, %v), want hit", val, ok)
	}
}

func TestRedisTTLExpiry(t *testing.T) {
	c, mr, cleanup := setupTestRedis(t)
	defer cleanup()
	ctx := context.Background()

	if err := c.Put(ctx, "k", "v"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	mr.FastForward(59 * time.Minute)
	if _, ok := c.Get(ctx, "k"); !ok {
		t.Error("at T+59m: expected hit")
	}

	mr.FastForward(2 * time.Minute)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("at T+61m: expected entry to have expired")
	}
}

func TestRedisDownDegradesToMiss(t *testing.T) {
	c, mr, cleanup := setupTestRedis(t)
	defer cleanup()
	mr.Close()

	if _, ok := c.Get(context.Background(), "k"); ok {
		t.Error("expected miss when redis is unreachable")
	}
}
