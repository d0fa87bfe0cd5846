package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/waypoint/pkg/buildinfo"
	"github.com/matzehuels/waypoint/pkg/cache"
	"github.com/matzehuels/waypoint/pkg/errors"
	"github.com/matzehuels/waypoint/pkg/observability"
	"github.com/matzehuels/waypoint/pkg/world"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "waypoint"

	// redisURLEnv names the environment variable that selects the Redis cache.
	redisURLEnv = "WAYPOINT_REDIS_URL"

	// redisKeyPrefix scopes every key written to a shared Redis server.
	redisKeyPrefix = "waypoint:"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Waypoint explores compass-linked world maps",
		Long:         `Waypoint loads text-adventure style world maps from TOML files, where every location has a north, east, south and west exit. It can inspect and validate a map, walk routes through it, render it with Graphviz and explore it interactively.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			hooks := logHooks{logger: c.Logger}
			observability.SetWorldHooks(hooks)
			observability.SetCacheHooks(hooks)
			c.Logger.Debug("starting", "build", buildinfo.String())
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.walkCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// World Loading
// =============================================================================

// loadWorld reads a world file and checks it for consistency.
func (c *CLI) loadWorld(ctx context.Context, path string) (*world.World, error) {
	prog := newProgress(loggerFromContext(ctx))
	w, err := world.Load(path, world.WithLogger(c.Logger))
	if err != nil {
		observability.World().OnLoad(ctx, path, 0, prog.elapsed(), err)
		prog.fail("load failed", err)
		return nil, err
	}
	observability.World().OnLoad(ctx, path, w.Len(), prog.elapsed(), nil)
	if err := w.Validate(); err != nil {
		prog.fail("validation failed", err)
		return nil, err
	}
	prog.done("Loaded " + w.Name())
	return w, nil
}

// =============================================================================
// Cache Factory
// =============================================================================

// cacheOpts selects the cache backend for a command.
type cacheOpts struct {
	noCache  bool
	redisURL string
}

// newCache returns the backend selected by opts along with the keyer that
// matches it. Redis wins over the file cache; a missing home directory
// disables caching instead of failing the command.
func (c *CLI) newCache(ctx context.Context, opts cacheOpts) (cache.Cache, cache.Keyer, error) {
	keyer := cache.NewDefaultKeyer()
	if opts.noCache {
		return cache.Disabled("--no-cache"), keyer, nil
	}

	if opts.redisURL != "" {
		if err := errors.ValidateRedisURL(opts.redisURL); err != nil {
			return nil, nil, err
		}
		rc, err := cache.NewRedisCache(ctx, opts.redisURL)
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeNetwork, err, "cannot reach redis cache")
		}
		c.Logger.Debug("using redis cache")
		return rc, cache.NewScopedKeyer(keyer, redisKeyPrefix), nil
	}

	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.Disabled(err.Error()), keyer, nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Debug("using file cache", "dir", dir)
	return fc, keyer, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/waypoint/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
