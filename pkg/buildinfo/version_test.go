package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	defer func() { Version = old }()

	got := String()
	if !strings.HasPrefix(got, "waypoint v9.9.9 ") {
		t.Errorf("String() = %q", got)
	}
	if strings.Contains(got, "\n") {
		t.Error("String() should be a single line")
	}
}

func TestTemplate(t *testing.T) {
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} version ") {
		t.Errorf("Template() = %q", got)
	}
	if !strings.Contains(got, "commit: "+Commit) {
		t.Errorf("Template() missing commit: %q", got)
	}
}
