// Package pkg provides the libraries behind the waypoint CLI.
//
// # Overview
//
// Waypoint models text-adventure maps: every location has four compass
// exits and a path joins an exit of one location to an exit of another.
// The pkg directory is organized as:
//
//  1. [slotgraph] - Generic keyed graph with a fixed number of edge slots per node
//  2. [world] - Locations and compass paths on top of slotgraph, plus the TOML loader
//  3. [render] - Graphviz rendering of world maps
//  4. [cache] - File, Redis and no-op caches for rendered artifacts
//  5. [errors] - Coded errors and input validation
//  6. [observability] - Event hooks for loading, rendering and caching
//
// # Architecture
//
// The typical data flow:
//
//	world.toml
//	     ↓
//	[world] package (decode, link locations through slotgraph)
//	     ↓
//	[render/nodelink] package (DOT, then SVG via Graphviz)
//	     ↓
//	[cache] package (store the artifact keyed by the world file hash)
//
// # Quick Start
//
//	w, err := world.Load("kanto.toml")
//	if err != nil {
//	    return err
//	}
//	route, err := w.Walk(w.Start(), world.North, world.North)
//
//	dot := nodelink.ToDOT(w, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [slotgraph]: github.com/matzehuels/waypoint/pkg/slotgraph
// [world]: github.com/matzehuels/waypoint/pkg/world
// [render]: github.com/matzehuels/waypoint/pkg/render
// [render/nodelink]: github.com/matzehuels/waypoint/pkg/render/nodelink
// [cache]: github.com/matzehuels/waypoint/pkg/cache
// [errors]: github.com/matzehuels/waypoint/pkg/errors
// [observability]: github.com/matzehuels/waypoint/pkg/observability
package pkg
