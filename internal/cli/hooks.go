package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/waypoint/pkg/observability"
)

// logHooks reports observability events through the CLI logger. Routine
// events go to debug level; cache failures are warnings.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.WorldHooks = logHooks{}
	_ observability.CacheHooks = logHooks{}
)

func (h logHooks) OnLoad(_ context.Context, path string, locations int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("load", "path", path, "locations", locations, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnRenderStart(_ context.Context, world, format string) {
	h.logger.Debug("render start", "world", world, "format", format)
}

func (h logHooks) OnRenderComplete(_ context.Context, world, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "world", world, "format", format, "err", err)
		return
	}
	h.logger.Debug("render done", "world", world, "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}

func (h logHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h logHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h logHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}

func (h logHooks) OnCacheError(_ context.Context, op string, err error) {
	h.logger.Warn("cache "+op+" failed", "err", err)
}
