package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-md2adf/pkg/adf"
	"github.com/goliatone/go-md2adf/pkg/mdast"
)

// MarkdownParser is the parsing front end. Implementations are total: every
// input yields a (possibly empty) sequence of block nodes.
type MarkdownParser interface {
	// Parse lowers Markdown into block nodes using the parser's defaults.
	Parse(markdown []byte) []*mdast.Node
	// ParseWithOptions lowers Markdown using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) []*mdast.Node
}

// ParseOptions customises the front end, keeping option names readable for
// configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
}

// DocumentConverter turns Markdown into ADF documents.
type DocumentConverter interface {
	Convert(markdown string) adf.Document
	ConvertWithReport(markdown string) ConversionReport
}

// DocumentValidator checks an ADF document against the emitted schema.
type DocumentValidator interface {
	Validate(doc adf.Document) error
}

// WarningType categorises conversion warnings.
type WarningType string

const (
	WarningUnknownBlock  WarningType = "unknown_block"
	WarningUnknownInline WarningType = "unknown_inline"
	WarningDepthExceeded WarningType = "depth_exceeded"
)

// ConversionWarning records content dropped during a conversion.
type ConversionWarning struct {
	Type     WarningType `json:"type"`
	NodeType string      `json:"nodeType,omitempty"`
	Message  string      `json:"message"`
}

// ConversionReport pairs a document with the warnings collected while
// building it. Warnings is empty unless warning collection is enabled.
type ConversionReport struct {
	Document adf.Document
	Warnings []ConversionWarning
}

// MarkdownService exposes the file workflows: converting raw bytes, single
// files and whole directories.
type MarkdownService interface {
	Convert(ctx context.Context, markdown []byte) (*ConversionReport, error)
	ConvertFile(ctx context.Context, path string) (*Document, error)
	ConvertDirectory(ctx context.Context, dir string, opts ConvertOptions) (*ConvertResult, error)
}

// Document represents a Markdown file together with its converted ADF tree.
type Document struct {
	// ID is derived from FilePath so repeated runs produce the same value.
	ID           uuid.UUID
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	ADF          adf.Document
	Warnings     []ConversionWarning
	LastModified time.Time
	// Checksum stores a SHA-256 digest of the original file content.
	Checksum []byte
}

// FrontMatter models metadata extracted from Markdown files. Unknown keys are
// kept in Custom; Raw holds every key that was set.
type FrontMatter struct {
	Title   string         `yaml:"title" json:"title"`
	Summary string         `yaml:"summary" json:"summary"`
	Tags    []string       `yaml:"tags" json:"tags"`
	Author  string         `yaml:"author" json:"author"`
	Date    time.Time      `yaml:"date" json:"date"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
	Raw     map[string]any `yaml:"-" json:"raw"`
}

// ConvertOptions fine-tunes directory discovery for a single call.
type ConvertOptions struct {
	Recursive *bool
	Pattern   string
}

// ConvertResult summarises a directory conversion. Per-file failures are
// collected in Errors instead of aborting the run.
type ConvertResult struct {
	Documents []*Document
	Errors    []error
}
