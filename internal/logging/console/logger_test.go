package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-md2adf/internal/identity"
	"github.com/goliatone/go-md2adf/internal/logging"
	"github.com/goliatone/go-md2adf/internal/logging/console"
	"github.com/goliatone/go-md2adf/pkg/interfaces"
)

func TestConsoleLogger_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 3, 14, 15, 9, 26, 535897000, time.UTC)

	provider := console.NewProvider(console.Options{
		Writer: &buf,
		Level:  console.LevelDebug,
		Clock:  func() time.Time { return now },
	})

	logger := provider.GetLogger("md2adf.markdown")
	logger = logger.(interfaces.FieldsLogger).WithFields(map[string]any{"module": "md2adf.markdown"})
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"run_id": "run-1234",
	})
	logger = logger.WithContext(ctx)

	docID := identity.DocumentUUID("docs/guide.md")
	logger.Info("markdown.file.converted",
		"id", docID,
		"path", "docs/guide.md",
		"blocks", 3,
	)

	got := strings.TrimSpace(buf.String())
	want := "2024-03-14T15:09:26.535897Z INFO markdown.file.converted blocks=3 id=" + docID.String() +
		" logger=md2adf.markdown module=md2adf.markdown path=docs/guide.md run_id=run-1234"
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	provider := console.NewProvider(console.Options{Writer: &buf})

	logger := provider.GetLogger("md2adf.test")
	logger.Debug("ignored.debug", "foo", "bar")
	logger.Info("included.info", "foo", "bar")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected single log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "included.info") {
		t.Fatalf("expected info log to be written, got %s", lines[0])
	}
	if strings.Contains(lines[0], "ignored.debug") {
		t.Fatalf("unexpected debug log present: %s", lines[0])
	}
}

func TestConsoleLogger_PairsArguments(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	provider := console.NewProvider(console.Options{
		Writer: &buf,
		Clock:  func() time.Time { return now },
	})

	provider.GetLogger("md2adf.test").Warn("convert.dropped", "node", "block html", 42, "x", "dangling")

	got := strings.TrimSpace(buf.String())
	want := `2024-01-02T03:04:05Z WARN convert.dropped arg3=x arg4=dangling logger=md2adf.test node="block html"`
	if got != want {
		t.Fatalf("unexpected log entry\nwant: %s\ngot:  %s", want, got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]console.Level{
		"trace":   console.LevelTrace,
		"DEBUG":   console.LevelDebug,
		"":        console.LevelInfo,
		"warning": console.LevelWarn,
		"error":   console.LevelError,
		" Fatal ": console.LevelFatal,
	}
	for input, want := range cases {
		got, err := console.ParseLevel(input)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
	if _, err := console.ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
