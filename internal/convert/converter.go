// Package convert turns parsed Markdown trees into flat-mark ADF documents.
//
// Formatting containers (strong, emphasis, strikethrough, link) never become
// nodes of their own. The walk threads the marks of every enclosing container
// down to the leaves, so each emitted text node carries its full formatting
// context, outermost mark first.
package convert

import (
	"strings"

	"github.com/goliatone/go-md2adf/internal/logging"
	"github.com/goliatone/go-md2adf/pkg/adf"
	"github.com/goliatone/go-md2adf/pkg/interfaces"
	"github.com/goliatone/go-md2adf/pkg/mdast"
)

// Option configures a Converter.
type Option func(*Converter)

// Converter implements interfaces.DocumentConverter. It holds configuration
// only; every call builds its output from scratch, so a single instance can
// be shared across goroutines.
type Converter struct {
	parser   interfaces.MarkdownParser
	logger   interfaces.Logger
	maxDepth int
	warnings bool
}

var _ interfaces.DocumentConverter = (*Converter)(nil)

// New constructs a converter around the supplied parsing front end.
func New(parser interfaces.MarkdownParser, opts ...Option) *Converter {
	c := &Converter{
		parser: parser,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// WithLogger injects the logger used for conversion summaries.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Converter) {
		if logger == nil {
			c.logger = logging.NoOp()
			return
		}
		c.logger = logger
	}
}

// WithMaxDepth caps container nesting. Containers deeper than depth are
// dropped. Zero or a negative value disables the limit.
func WithMaxDepth(depth int) Option {
	return func(c *Converter) {
		if depth < 0 {
			depth = 0
		}
		c.maxDepth = depth
	}
}

// WithWarnings toggles collection of warnings for dropped content.
func WithWarnings(enabled bool) Option {
	return func(c *Converter) {
		c.warnings = enabled
	}
}

// Convert parses markdown and returns the ADF document. Blank input returns
// an empty document without invoking the parser.
func (c *Converter) Convert(markdown string) adf.Document {
	return c.ConvertWithReport(markdown).Document
}

// ConvertWithReport behaves like Convert and also returns the warnings
// collected for dropped content when warnings are enabled.
func (c *Converter) ConvertWithReport(markdown string) interfaces.ConversionReport {
	if strings.TrimSpace(markdown) == "" || c.parser == nil {
		return interfaces.ConversionReport{Document: adf.NewDocument(nil)}
	}
	return c.ConvertNodesWithReport(c.parser.Parse([]byte(markdown)))
}

// ConvertNodes converts an already parsed block sequence.
func (c *Converter) ConvertNodes(blocks []*mdast.Node) adf.Document {
	return c.ConvertNodesWithReport(blocks).Document
}

// ConvertNodesWithReport converts an already parsed block sequence and
// returns the collected warnings.
func (c *Converter) ConvertNodesWithReport(blocks []*mdast.Node) interfaces.ConversionReport {
	w := &walker{maxDepth: c.maxDepth}
	if c.warnings {
		w.report = &report{}
	}

	doc := adf.NewDocument(w.convertBlocks(blocks, 0))

	var warnings []interfaces.ConversionWarning
	if w.report != nil {
		warnings = w.report.warnings
	}

	c.logger.Debug("convert.completed",
		"source_blocks", len(blocks),
		"blocks", len(doc.Content),
		"dropped", w.dropped,
	)

	return interfaces.ConversionReport{
		Document: doc,
		Warnings: warnings,
	}
}

// walker carries per-call state: the depth limit and the optional report.
type walker struct {
	maxDepth int
	report   *report
	dropped  int
}

// enter reports whether a container at depth may be expanded.
func (w *walker) enter(node *mdast.Node, depth int) bool {
	if w.maxDepth <= 0 || depth <= w.maxDepth {
		return true
	}
	w.dropped++
	w.report.add(interfaces.WarningDepthExceeded, node.Type, "nesting depth limit reached; subtree dropped")
	return false
}

func (w *walker) drop(kind interfaces.WarningType, node *mdast.Node) {
	w.dropped++
	w.report.add(kind, node.Type, "unsupported node dropped")
}
