package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/goliatone/go-md2adf/pkg/interfaces"
	"github.com/goliatone/go-md2adf/pkg/mdast"
)

// GoldmarkParser implements interfaces.MarkdownParser using the goldmark
// engine. Parsing is total: goldmark accepts any input and the lowering step
// maps whatever tree it builds onto mdast nodes.
//
// The parser is stateless so callers can reuse a single instance across
// requests without additional locking.
type GoldmarkParser struct {
	defaultOptions interfaces.ParseOptions
}

var _ interfaces.MarkdownParser = (*GoldmarkParser)(nil)

// NewGoldmarkParser constructs a parser. With no extensions configured the
// table and strikethrough extensions are enabled.
func NewGoldmarkParser(defaults interfaces.ParseOptions) *GoldmarkParser {
	return &GoldmarkParser{
		defaultOptions: defaults,
	}
}

// Parse satisfies interfaces.MarkdownParser using the default options.
func (p *GoldmarkParser) Parse(markdown []byte) []*mdast.Node {
	return p.ParseWithOptions(markdown, p.defaultOptions)
}

// ParseWithOptions parses markdown and lowers the goldmark AST into mdast
// block nodes.
func (p *GoldmarkParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) []*mdast.Node {
	engine := newGoldmarkEngine(opts)
	root := engine.Parser().Parse(text.NewReader(markdown))

	l := lowerer{source: markdown, hardWraps: opts.HardWraps}
	return l.blocks(root)
}

// newGoldmarkEngine builds a goldmark.Markdown with the extensions named in
// opts. Only the parser half of the engine is used.
func newGoldmarkEngine(opts interfaces.ParseOptions) goldmark.Markdown {
	engineOptions := []goldmark.Option{}
	if exts := collectExtensions(opts.Extensions); len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}
	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

// KnownExtension reports whether name maps to a registered extension.
func KnownExtension(name string) bool {
	_, ok := extensionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.Table,
			extension.Strikethrough,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
