package cache

import (
	"context"
	"sync/atomic"
	"time"
)

// NullCache stands in for a real backend when caching is off. Lookups always
// miss and writes are discarded, but discarded artifacts are counted so the
// CLI can report what a cache would have held.
type NullCache struct {
	// Reason says why caching is off, e.g. "--no-cache".
	Reason string

	dropped atomic.Int64
	bytes   atomic.Int64
}

// NewNullCache creates a null cache with a generic reason.
func NewNullCache() Cache {
	return Disabled("disabled")
}

// Disabled creates a null cache that records why caching is off.
func Disabled(reason string) *NullCache {
	return &NullCache{Reason: reason}
}

// Dropped returns how many writes were discarded and their total size.
func (c *NullCache) Dropped() (entries, bytes int64) {
	return c.dropped.Load(), c.bytes.Load()
}

func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.dropped.Add(1)
	c.bytes.Add(int64(len(data)))
	return nil
}

func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
