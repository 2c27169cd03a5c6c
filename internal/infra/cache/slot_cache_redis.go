package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// SlotCacheRedis caches computed slot lists per location and date. Keys
// carry a per-location version counter; invalidation bumps the counter so
// stale entries simply expire instead of being scanned for. A nil client
// disables the cache entirely.
type SlotCacheRedis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotCacheRedis(rdb *redis.Client, ttl time.Duration) *SlotCacheRedis {
	if rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &SlotCacheRedis{rdb: rdb, ttl: ttl}
}

func (c *SlotCacheRedis) version(ctx context.Context, locationID uint) int64 {
	v, err := c.rdb.Get(ctx, fmt.Sprintf("slots:ver:%d", locationID)).Int64()
	if err != nil {
		return 0
	}
	return v
}

func (c *SlotCacheRedis) key(ctx context.Context, locationID uint, date string) string {
	return fmt.Sprintf("slots:%d:%d:%s", locationID, c.version(ctx, locationID), date)
}

func (c *SlotCacheRedis) GetSlots(ctx context.Context, locationID uint, date string) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, c.key(ctx, locationID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCacheRedis) SetSlots(ctx context.Context, locationID uint, date string, slots []string) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, c.key(ctx, locationID, date), raw, c.ttl).Err(); err != nil {
		log.Println("slot cache set failed:", err)
	}
}

func (c *SlotCacheRedis) InvalidateLocation(ctx context.Context, locationID uint) {
	if c == nil {
		return
	}

	if err := c.rdb.Incr(ctx, fmt.Sprintf("slots:ver:%d", locationID)).Err(); err != nil {
		log.Println("slot cache invalidate failed:", err)
	}
}
