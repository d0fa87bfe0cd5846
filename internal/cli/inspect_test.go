package cli

import (
	"slices"
	"strings"
	"testing"
)

func TestExitTable(t *testing.T) {
	tbl, err := exitTable(loadTestWorld(t))
	if err != nil {
		t.Fatalf("exitTable: %v", err)
	}
	for _, want := range []string{"Location", "north", "west", "Items", iconStart + " Gate", "Garden", "Lantern", "Shed"} {
		if !strings.Contains(tbl, want) {
			t.Errorf("table missing %q:\n%s", want, tbl)
		}
	}
}

func TestDeadEnds(t *testing.T) {
	if got := deadEnds(loadTestWorld(t)); !slices.Equal(got, []string{"Shed"}) {
		t.Errorf("deadEnds = %v, want [Shed]", got)
	}
}

func TestOrDash(t *testing.T) {
	if orDash("") != "-" || orDash("x") != "x" {
		t.Error("orDash should substitute only empty strings")
	}
}
