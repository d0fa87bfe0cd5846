// Package nodelink renders world maps as node-link diagrams.
//
// # Usage
//
// Convert a world to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(w, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: node labels include region, description and items
//
// # DOT Format
//
// The graph is undirected. Each path is drawn between compass ports, so a
// path leaving a location northwards starts at the top of its box:
//
//	"Pallet Town":n -- "Route 1":s;
//
// The starting location is drawn with a double outline. Loops are drawn as a
// single self-edge labelled with the direction.
package nodelink
