package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const summaryKey = "trackboard:dashboard:summary"

// SummaryCache is a best-effort read-through cache for the dashboard summary.
// Every operation degrades silently when redis is unavailable; callers always
// fall back to the store.
type SummaryCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSummaryCache(rdb *redis.Client, ttl time.Duration) *SummaryCache {
	return &SummaryCache{rdb: rdb, ttl: ttl}
}

// Get unmarshals the cached summary into dest. Returns false on miss or any
// redis/decoding error.
func (c *SummaryCache) Get(ctx context.Context, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, summaryKey).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set stores the summary with the configured TTL.
func (c *SummaryCache) Set(ctx context.Context, v interface{}) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, summaryKey, raw, c.ttl)
}

// Invalidate drops the cached summary. Called after project/indicator
// mutations.
func (c *SummaryCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, summaryKey)
}
