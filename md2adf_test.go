package md2adf_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/goliatone/go-md2adf"
	"github.com/goliatone/go-md2adf/internal/di"
	"github.com/goliatone/go-md2adf/pkg/adf"
)

func TestConvert(t *testing.T) {
	doc := md2adf.Convert("**bold**")

	encoded, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"version":1,"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"bold","marks":[{"type":"strong"}]}]}]}`
	if string(encoded) != want {
		t.Fatalf("unexpected document\nwant: %s\ngot:  %s", want, encoded)
	}
}

func TestConvertBlank(t *testing.T) {
	doc := md2adf.Convert(" \n ")
	if doc.Version != 1 || doc.Content == nil || len(doc.Content) != 0 {
		t.Fatalf("expected empty document, got %#v", doc)
	}
}

func TestModuleConvertCollectsWarnings(t *testing.T) {
	cfg := md2adf.DefaultConfig()
	cfg.Converter.CollectWarnings = true
	cfg.Validation.Enabled = true

	module, err := md2adf.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if module.Validator() == nil {
		t.Fatal("expected validator when validation is enabled")
	}
	if module.Markdown() != nil {
		t.Fatal("expected no markdown service when files are disabled")
	}

	report, err := module.Convert(context.Background(), []byte("<div>\nraw\n</div>\n\ntext"))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(report.Document.Content) != 1 {
		t.Fatalf("expected html block to be dropped, got %#v", report.Document.Content)
	}
	if len(report.Warnings) != 1 || report.Warnings[0].NodeType != "block_html" {
		t.Fatalf("expected block_html warning, got %#v", report.Warnings)
	}
}

type rejectAll struct{}

var errRejected = errors.New("rejected")

func (rejectAll) Validate(adf.Document) error { return errRejected }

func TestModuleConvertValidates(t *testing.T) {
	module, err := md2adf.New(md2adf.DefaultConfig(), di.WithValidator(rejectAll{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := module.Convert(context.Background(), []byte("x")); !errors.Is(err, errRejected) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestModuleConvertHonoursCancelledContext(t *testing.T) {
	module, err := md2adf.New(md2adf.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := module.Convert(ctx, []byte("x")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := md2adf.DefaultConfig()
	cfg.Parser.Extensions = []string{"nope"}

	if _, err := md2adf.New(cfg); !errors.Is(err, md2adf.ErrParserExtensionUnknown) {
		t.Fatalf("expected ErrParserExtensionUnknown, got %v", err)
	}
}
