package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/waypoint/pkg/cache"
	"github.com/matzehuels/waypoint/pkg/errors"
	"github.com/matzehuels/waypoint/pkg/observability"
	"github.com/matzehuels/waypoint/pkg/render"
	"github.com/matzehuels/waypoint/pkg/render/nodelink"
	"github.com/matzehuels/waypoint/pkg/world"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; derived from the world file when empty
	format   string // output format: "dot" or "svg"
	detailed bool   // include region, description and items in node labels
	cacheOpts
}

// renderCommand creates the render command for drawing world maps.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: render.FormatSVG}

	cmd := &cobra.Command{
		Use:   "render [world.toml]",
		Short: "Render a world map to DOT or SVG",
		Long: `Render a world map with Graphviz.

Rendered artifacts are cached by the content of the world file. The cache
lives in ~/.cache/waypoint unless --redis or ` + redisURLEnv + ` selects a
shared Redis server.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeWorldFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.redisURL == "" {
				opts.redisURL = os.Getenv(redisURLEnv)
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: world file name with the format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: "+strings.Join(render.Formats, ", "))
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show region, description and items in each location")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "redis URL for a shared cache (default: $"+redisURLEnv+")")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	if err := errors.ValidateFormat(opts.format, render.Formats); err != nil {
		return err
	}
	if err := errors.ValidateWorldFile(path); err != nil {
		return err
	}

	store, keyer, err := c.newCache(ctx, opts.cacheOpts)
	if err != nil {
		return err
	}
	defer store.Close()

	w, err := c.loadWorld(ctx, path)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Rendering "+w.Name()+"...")
	spinner.Start()
	data, cached, err := renderWorld(ctx, store, keyer, path, w, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	if nc, ok := store.(*cache.NullCache); ok {
		n, size := nc.Dropped()
		c.Logger.Debug("cache disabled", "reason", nc.Reason, "dropped", n, "bytes", size)
	}

	out := opts.output
	if out == "" {
		out = defaultOutput(path, opts.format)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot write %s", out)
	}

	printSuccess("Rendered %s", w.Name())
	printStats(w.Stats(), cached)
	printFile(out)
	return nil
}

// renderWorld returns the rendered artifact for w, consulting store first.
// The cache key covers the world file bytes and every option that changes
// the output. A failing cache never fails the render.
func renderWorld(ctx context.Context, store cache.Cache, keyer cache.Keyer, path string, w *world.World, opts renderOpts) ([]byte, bool, error) {
	hooks := observability.Cache()

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot read %s", path)
	}
	key := keyer.ArtifactKey(cache.Hash(src), cache.ArtifactKeyOpts{
		Format:   opts.format,
		Detailed: opts.detailed,
	})

	if data, ok, err := store.Get(ctx, key); err != nil {
		hooks.OnCacheError(ctx, "read", err)
	} else if ok {
		hooks.OnCacheHit(ctx, key)
		return data, true, nil
	}
	hooks.OnCacheMiss(ctx, key)

	start := time.Now()
	observability.World().OnRenderStart(ctx, w.Name(), opts.format)
	dot := nodelink.ToDOT(w, nodelink.Options{Detailed: opts.detailed})
	data, err := nodelink.Render(ctx, dot, opts.format)
	observability.World().OnRenderComplete(ctx, w.Name(), opts.format, len(data), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := store.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		hooks.OnCacheError(ctx, "write", err)
	} else {
		hooks.OnCacheSet(ctx, key, len(data))
	}
	return data, false, nil
}

// defaultOutput replaces the extension of the world file with format.
func defaultOutput(path, format string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return base + "." + format
}
