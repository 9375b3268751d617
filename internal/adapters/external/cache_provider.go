package external

import (
	"sync"
	"time"

	"weatherwidget.app/internal/ports"
)

// cacheCounters tracks hit/miss statistics shared by the cache providers
type cacheCounters struct {
	mutex  sync.RWMutex
	hits   int64
	misses int64
}

func (c *cacheCounters) recordHit() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.hits++
}

func (c *cacheCounters) recordMiss() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.misses++
}

func (c *cacheCounters) snapshot() ports.CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	total := c.hits + c.misses
	hitRatio := float64(0)
	if total > 0 {
		hitRatio = float64(c.hits) / float64(total)
	}

	return ports.CacheStats{
		Hits:        c.hits,
		Misses:      c.misses,
		TotalOps:    total,
		HitRatio:    hitRatio,
		LastUpdated: time.Now(),
	}
}

var (
	_ ports.CacheProvider      = (*MemoryCacheProvider)(nil)
	_ ports.CacheStatsProvider = (*MemoryCacheProvider)(nil)
	_ ports.CacheProvider      = (*RedisCacheProviderAdapter)(nil)
	_ ports.CacheStatsProvider = (*RedisCacheProviderAdapter)(nil)
)
