package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryPutGet(t *testing.T) {
	c := NewMemory(time.Hour)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "doj_news"); ok {
		t.Fatal("expected miss on empty cache")
	}
	if err := c.Put(ctx, "doj_news", "Latest from DoJ"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	val, ok := c.Get(ctx, "doj_news")
	if !ok || val != "Latest from DoJ" {
		t.Fatalf("Get = (%q, %v), want hit", val, ok)
	}
}

func TestMemoryTTLBoundary(t *testing.T) {
	c := NewMemory(time.Hour)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	c.now = func() time.Time { return now }

	if err := c.Put(ctx, "k", "v"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	now = base.Add(59 * time.Minute)
	if val, ok := c.Get(ctx, "k"); !ok || val != "v" {
		t.Errorf("at T+59m: Get = (%q, %v), want (v, true)", val, ok)
	}

	now = base.Add(61 * time.Minute)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("at T+61m: expected expired entry to be treated as absent")
	}
}

func TestMemoryOverwriteResetsClock(t *testing.T) {
	c := NewMemory(time.Hour)
	ctx := context.Background()

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	c.now = func() time.Time { return now }

	_ = c.Put(ctx, "k", "old")
	now = base.Add(50 * time.Minute)
	_ = c.Put(ctx, "k", "new")
	now = base.Add(90 * time.Minute)

	val, ok := c.Get(ctx, "k")
	if !ok || val != "new" {
		t.Errorf("Get = (%q, %v), want refreshed entry to survive", val, ok)
	}
}
