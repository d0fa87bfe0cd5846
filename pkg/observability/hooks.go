// Package observability provides hooks for instrumenting waypoint.
//
// Libraries and commands emit events through the registered hooks; the
// defaults do nothing. A host registers its own implementations once at
// startup, before any world is loaded:
//
//	observability.SetWorldHooks(&myWorldHooks{})
//	observability.SetCacheHooks(&myCacheHooks{})
//
// Emitting an event:
//
//	start := time.Now()
//	w, err := world.Load(path)
//	observability.World().OnLoad(ctx, path, w.Len(), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// World Hooks
// =============================================================================

// WorldHooks receives events about loading and rendering worlds.
type WorldHooks interface {
	// OnLoad records a world file load. locations is zero when err is set.
	OnLoad(ctx context.Context, path string, locations int, duration time.Duration, err error)

	// OnRenderStart and OnRenderComplete bracket drawing a world map.
	OnRenderStart(ctx context.Context, world, format string)
	OnRenderComplete(ctx context.Context, world, format string, size int, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, key string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, key string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, key string, size int)

	// OnCacheError records a failed cache read or write. Cache errors are
	// never fatal, so this is the only place they surface.
	OnCacheError(ctx context.Context, op string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopWorldHooks is a no-op implementation of WorldHooks.
type NoopWorldHooks struct{}

func (NoopWorldHooks) OnLoad(context.Context, string, int, time.Duration, error) {}
func (NoopWorldHooks) OnRenderStart(context.Context, string, string)            {}
func (NoopWorldHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)          {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)         {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int)     {}
func (NoopCacheHooks) OnCacheError(context.Context, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	worldHooks WorldHooks = NoopWorldHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetWorldHooks registers custom world hooks. A nil h is ignored.
func SetWorldHooks(h WorldHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		worldHooks = h
	}
}

// SetCacheHooks registers custom cache hooks. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// World returns the registered world hooks.
func World() WorldHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return worldHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	worldHooks = NoopWorldHooks{}
	cacheHooks = NoopCacheHooks{}
}
