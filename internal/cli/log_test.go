package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %q", buf.String())
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown", "world", "Hollow")
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(buf.String(), "world=Hollow") {
		t.Errorf("debug line missing after SetLogLevel: %q", buf.String())
	}
}

func TestLoadWorldReportsProgress(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	ctx := withLogger(context.Background(), c.Logger)

	if _, err := c.loadWorld(ctx, testWorld); err != nil {
		t.Fatalf("loadWorld: %v", err)
	}

	line := regexp.MustCompile(`Loaded Hollow \(\d+(\.\d+)?m?s\)`)
	if !line.MatchString(buf.String()) {
		t.Errorf("no progress line in %q", buf.String())
	}
}

func TestLoadWorldFailureLogsNoProgress(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	ctx := withLogger(context.Background(), c.Logger)

	if _, err := c.loadWorld(ctx, "testdata/missing.toml"); err == nil {
		t.Fatal("expected error for missing world")
	}
	if strings.Contains(buf.String(), "Loaded") {
		t.Errorf("progress logged for failed load: %q", buf.String())
	}
}

func TestLoadWorldFailureDebugLine(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogDebug)
	ctx := withLogger(context.Background(), c.Logger)

	if _, err := c.loadWorld(ctx, "testdata/missing.toml"); err == nil {
		t.Fatal("expected error for missing world")
	}
	if !strings.Contains(buf.String(), "load failed") {
		t.Errorf("no failure line at debug level: %q", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("bare context should fall back to log.Default()")
	}

	c := newTestCLI()
	ctx := withLogger(context.Background(), c.Logger)
	if got := loggerFromContext(ctx); got != c.Logger {
		t.Error("loggerFromContext should return the CLI logger")
	}
}
