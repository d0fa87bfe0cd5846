// Package render provides visualization rendering for world maps.
//
// # Overview
//
// The [nodelink] subpackage turns a world into a Graphviz node-link
// diagram: locations become boxes and paths become lines that leave each
// box on the side matching their compass direction.
//
//	dot := nodelink.ToDOT(w, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [nodelink]: github.com/matzehuels/waypoint/pkg/render/nodelink
package render

// Supported output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// Formats lists every format the renderers can produce.
var Formats = []string{FormatDOT, FormatSVG}
