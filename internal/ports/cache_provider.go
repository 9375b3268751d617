package ports

import (
	"context"
	"time"
)

// CacheStats represents cache performance counters
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}

// CacheProvider defines the contract for byte-level caching operations
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Clear(ctx context.Context) error
}

// CacheStatsProvider is implemented by caches that track hit/miss counts
type CacheStatsProvider interface {
	GetStats() CacheStats
}
