package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/waypoint/pkg/errors"
	"github.com/matzehuels/waypoint/pkg/render"
	"github.com/matzehuels/waypoint/pkg/world"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes region, description and items in node labels.
	// When false, only the location name is shown.
	Detailed bool
}

// compassPorts maps directions to Graphviz compass points.
var compassPorts = [world.NumDirections]string{"n", "e", "s", "w"}

// ToDOT converts a world to Graphviz DOT format.
// Output is deterministic: locations and paths appear in name order.
func ToDOT(w *world.World, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=12, fontcolor=gray40];\n")
	buf.WriteString("\n")

	for _, name := range w.Names() {
		loc, err := w.Location(name)
		if err != nil {
			continue
		}
		attrs := fmtAttrs(*loc, fmtLabel(*loc, opts.Detailed), name == w.Start())
		fmt.Fprintf(&buf, "  %q [%s];\n", name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, p := range w.Paths() {
		if p.From == p.To && p.Dir == p.Back {
			fmt.Fprintf(&buf, "  %q:%s -- %q:%s [label=%q];\n", p.From, compassPorts[p.Dir], p.To, compassPorts[p.Dir], p.Dir.String())
			continue
		}
		fmt.Fprintf(&buf, "  %q:%s -- %q:%s;\n", p.From, compassPorts[p.Dir], p.To, compassPorts[p.Back])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(loc world.Location, detailed bool) string {
	if !detailed {
		return loc.Name
	}

	var parts []string
	if loc.Region != "" {
		parts = append(parts, "region: "+loc.Region)
	}
	if loc.Description != "" {
		parts = append(parts, loc.Description)
	}
	if len(loc.Items) > 0 {
		parts = append(parts, "items: "+strings.Join(loc.Items, ", "))
	}
	if len(parts) == 0 {
		return loc.Name
	}
	return loc.Name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(loc world.Location, label string, start bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if start {
		attrs = append(attrs, "peripheries=2", "fillcolor=lightyellow")
	}
	if len(loc.Items) > 0 && !start {
		attrs = append(attrs, "fillcolor=honeydew")
	}
	return attrs
}

// Render produces the requested format from DOT source.
// FormatDOT returns the source unchanged.
func Render(ctx context.Context, dot, format string) ([]byte, error) {
	switch format {
	case render.FormatDOT:
		return []byte(dot), nil
	case render.FormatSVG:
		return RenderSVG(ctx, dot)
	default:
		return nil, errors.ValidateFormat(format, render.Formats)
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales to its
// container instead of using Graphviz's point-based width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
