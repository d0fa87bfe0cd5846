// Package cache stores rendered world artifacts between CLI runs.
//
// Three backends implement [Cache]:
//
//   - [FileCache] keeps entries as JSON files under a local directory
//   - [RedisCache] shares entries through a Redis server
//   - [NullCache] never stores anything (used by --no-cache)
//
// Keys are built with a [Keyer] so every backend sees the same layout.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DefaultTTL is how long rendered artifacts stay cached.
const DefaultTTL = 7 * 24 * time.Hour
