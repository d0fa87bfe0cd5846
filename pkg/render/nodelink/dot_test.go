package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/waypoint/pkg/errors"
	"github.com/matzehuels/waypoint/pkg/world"
)

func testWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.New("test")
	for _, loc := range []world.Location{
		{Name: "Pallet Town", Region: "Kanto", Description: "A quiet town."},
		{Name: "Route 1", Items: []string{"Potion"}},
		{Name: "Forest"},
	} {
		if err := w.AddLocation(loc); err != nil {
			t.Fatalf("AddLocation(%s): %v", loc.Name, err)
		}
	}
	if err := w.Link("Pallet Town", world.North, "Route 1"); err != nil {
		t.Fatalf("Link: %v", err)
	}
	if err := w.Link("Route 1", world.West, "Forest"); err != nil {
		t.Fatalf("Link: %v", err)
	}
	if err := w.Loop("Forest", world.North); err != nil {
		t.Fatalf("Loop: %v", err)
	}
	if err := w.SetStart("Pallet Town"); err != nil {
		t.Fatalf("SetStart: %v", err)
	}
	return w
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testWorld(t), Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Errorf("expected undirected graph header, got %q", dot[:min(20, len(dot))])
	}
	for _, want := range []string{
		`"Pallet Town" [label="Pallet Town", peripheries=2, fillcolor=lightyellow];`,
		`"Route 1" [label="Route 1", fillcolor=honeydew];`,
		`"Forest" [label="Forest"];`,
		`"Pallet Town":n -- "Route 1":s;`,
		`"Forest":e -- "Route 1":w;`,
		`"Forest":n -- "Forest":n [label="north"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("DOT should not contain directed edges")
	}
}

func TestToDOTDeterministic(t *testing.T) {
	w := testWorld(t)
	first := ToDOT(w, Options{Detailed: true})
	for range 5 {
		if got := ToDOT(w, Options{Detailed: true}); got != first {
			t.Fatal("ToDOT output changed between calls")
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testWorld(t), Options{Detailed: true})

	for _, want := range []string{
		`label="Pallet Town\nregion: Kanto\nA quiet town."`,
		`label="Route 1\nitems: Potion"`,
		`label="Forest"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("detailed DOT missing %q\n%s", want, dot)
		}
	}
}

func TestToDOTEmptyWorld(t *testing.T) {
	dot := ToDOT(world.New("empty"), Options{})
	if !strings.HasPrefix(dot, "graph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("unexpected DOT for empty world:\n%s", dot)
	}
	if strings.Contains(dot, "--") {
		t.Errorf("empty world should have no edges:\n%s", dot)
	}
}

func TestRenderDOTPassthrough(t *testing.T) {
	dot := ToDOT(testWorld(t), Options{})
	out, err := Render(context.Background(), dot, "dot")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if string(out) != dot {
		t.Error("dot format should return the source unchanged")
	}
}

func TestRenderUnsupportedFormat(t *testing.T) {
	_, err := Render(context.Background(), "graph G {}", "pdf")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT, got %v", err)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?><svg width="224pt" height="116pt" viewBox="0.00 0.00 224.00 116.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 224.00 116.00" width="224" height="116"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if strings.Contains(out, "pt\"") {
		t.Errorf("point units should be removed: %s", out)
	}
	if !strings.HasSuffix(out, "<g/></svg>") {
		t.Errorf("body should be preserved: %s", out)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(in); string(got) != string(in) {
		t.Errorf("expected input unchanged, got %s", got)
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering skipped in short mode")
	}
	svg, err := RenderSVG(context.Background(), ToDOT(testWorld(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	out := string(svg)
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "Pallet Town") {
		t.Errorf("unexpected SVG output: %.200s", out)
	}
}
