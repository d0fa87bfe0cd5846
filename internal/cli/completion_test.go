package cli

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestCompletionScripts(t *testing.T) {
	for _, shell := range completionShells {
		t.Run(shell, func(t *testing.T) {
			root := newTestCLI().RootCommand()
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})
			if err := root.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out.String(), "waypoint") {
				t.Errorf("%s script does not mention waypoint", shell)
			}
		})
	}
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	root := newTestCLI().RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"completion", "tcsh"})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("expected error for unsupported shell")
	}
}

func TestCompleteWorldFile(t *testing.T) {
	exts, dir := completeWorldFile(nil, nil, "")
	if dir != cobra.ShellCompDirectiveFilterFileExt || !slices.Equal(exts, []string{"toml"}) {
		t.Errorf("first arg = (%v, %v), want toml filter", exts, dir)
	}

	got, dir := completeWorldFile(nil, []string{"hollow.toml"}, "")
	if dir != cobra.ShellCompDirectiveNoFileComp || len(got) != 0 {
		t.Errorf("second arg = (%v, %v), want no completions", got, dir)
	}
}

func TestCompleteWalkArgs(t *testing.T) {
	tests := []struct {
		toComplete string
		want       []string
	}{
		{"", []string{"north", "east", "south", "west"}},
		{"s", []string{"south"}},
		{"E", []string{"east"}},
		{"up", nil},
	}

	for _, tt := range tests {
		got, dir := completeWalkArgs(nil, []string{"hollow.toml"}, tt.toComplete)
		if dir != cobra.ShellCompDirectiveNoFileComp {
			t.Errorf("%q: directive = %v", tt.toComplete, dir)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("%q: got %v, want %v", tt.toComplete, got, tt.want)
		}
	}

	_, dir := completeWalkArgs(nil, nil, "")
	if dir != cobra.ShellCompDirectiveFilterFileExt {
		t.Errorf("world argument directive = %v, want file filter", dir)
	}
}
