package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/util"

	"github.com/goliatone/go-md2adf/pkg/mdast"
)

// lowerer maps a goldmark AST onto mdast nodes. Goldmark splits prose into
// many Text segments; adjacent segments without a line break between them are
// merged so a run of plain prose becomes a single text leaf.
type lowerer struct {
	source    []byte
	hardWraps bool
}

func (l lowerer) blocks(parent ast.Node) []*mdast.Node {
	var out []*mdast.Node
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		if node := l.block(child); node != nil {
			out = append(out, node)
		}
	}
	return out
}

func (l lowerer) block(n ast.Node) *mdast.Node {
	switch node := n.(type) {
	case *ast.Paragraph:
		return mdast.New(mdast.Paragraph, l.inlines(node)...)

	case *ast.TextBlock:
		return mdast.New(mdast.BlockText, l.inlines(node)...)

	case *ast.Heading:
		return mdast.New(mdast.Heading, l.inlines(node)...).WithAttr(mdast.AttrLevel, node.Level)

	case *ast.FencedCodeBlock:
		code := &mdast.Node{Type: mdast.BlockCode, Raw: l.lines(node)}
		if node.Info != nil {
			if info := strings.TrimSpace(string(unescape(node.Info.Segment.Value(l.source)))); info != "" {
				code.WithAttr(mdast.AttrInfo, info)
			}
		}
		return code

	case *ast.CodeBlock:
		return &mdast.Node{Type: mdast.BlockCode, Raw: l.lines(node)}

	case *ast.Blockquote:
		return mdast.New(mdast.BlockQuote, l.blocks(node)...)

	case *ast.List:
		return mdast.New(mdast.List, l.blocks(node)...).
			WithAttr(mdast.AttrOrdered, node.IsOrdered()).
			WithAttr(mdast.AttrStart, node.Start).
			WithAttr(mdast.AttrTight, node.IsTight)

	case *ast.ListItem:
		return mdast.New(mdast.ListItem, l.blocks(node)...)

	case *ast.ThematicBreak:
		return mdast.New(mdast.ThematicBreak)

	case *ast.HTMLBlock:
		raw := l.lines(node)
		if node.HasClosure() {
			raw += string(node.ClosureLine.Value(l.source))
		}
		return &mdast.Node{Type: mdast.BlockHTML, Raw: raw}

	case *extast.Table:
		return l.table(node)

	default:
		return mdast.New(kindType(n), l.blocks(n)...)
	}
}

func (l lowerer) table(node *extast.Table) *mdast.Node {
	table := mdast.New(mdast.Table)
	body := mdast.New(mdast.TableBody)

	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch row := child.(type) {
		case *extast.TableHeader:
			table.Children = append(table.Children, mdast.New(mdast.TableHead, l.cells(row, true)...))
		case *extast.TableRow:
			body.Children = append(body.Children, mdast.New(mdast.TableRow, l.cells(row, false)...))
		}
	}

	table.Children = append(table.Children, body)
	return table
}

func (l lowerer) cells(row ast.Node, head bool) []*mdast.Node {
	var out []*mdast.Node
	for child := row.FirstChild(); child != nil; child = child.NextSibling() {
		cell, ok := child.(*extast.TableCell)
		if !ok {
			continue
		}
		node := mdast.New(mdast.TableCell, l.inlines(cell)...).WithAttr(mdast.AttrHead, head)
		if cell.Alignment != extast.AlignNone {
			node.WithAttr(mdast.AttrAlign, cell.Alignment.String())
		}
		out = append(out, node)
	}
	return out
}

func (l lowerer) inlines(parent ast.Node) []*mdast.Node {
	var (
		out     []*mdast.Node
		pending strings.Builder
	)

	flush := func() {
		if pending.Len() == 0 {
			return
		}
		out = append(out, mdast.NewText(pending.String()))
		pending.Reset()
	}

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Text:
			value := node.Segment.Value(l.source)
			if !node.IsRaw() {
				value = unescape(value)
			}
			soft, hard := node.SoftLineBreak(), node.HardLineBreak()
			if soft && l.hardWraps {
				soft, hard = false, true
			}
			if soft || hard {
				pending.WriteString(strings.TrimRight(string(value), " \t"))
				flush()
				if hard {
					out = append(out, mdast.New(mdast.LineBreak))
				} else {
					out = append(out, mdast.New(mdast.SoftBreak))
				}
				continue
			}
			pending.Write(value)

		case *ast.String:
			pending.Write(node.Value)

		default:
			flush()
			if lowered := l.inline(child); lowered != nil {
				out = append(out, lowered)
			}
		}
	}

	flush()
	return out
}

func (l lowerer) inline(n ast.Node) *mdast.Node {
	switch node := n.(type) {
	case *ast.Emphasis:
		if node.Level >= 2 {
			return mdast.New(mdast.Strong, l.inlines(node)...)
		}
		return mdast.New(mdast.Emphasis, l.inlines(node)...)

	case *extast.Strikethrough:
		return mdast.New(mdast.Strikethrough, l.inlines(node)...)

	case *ast.Link:
		link := mdast.New(mdast.Link, l.inlines(node)...).WithAttr(mdast.AttrURL, string(unescape(node.Destination)))
		if len(node.Title) > 0 {
			link.WithAttr(mdast.AttrTitle, string(unescape(node.Title)))
		}
		return link

	case *ast.AutoLink:
		// Autolinks take their destination verbatim.
		return mdast.New(mdast.Link, mdast.NewText(string(node.Label(l.source)))).
			WithAttr(mdast.AttrURL, string(node.URL(l.source)))

	case *ast.Image:
		image := mdast.New(mdast.Image, l.inlines(node)...).WithAttr(mdast.AttrURL, string(unescape(node.Destination)))
		if len(node.Title) > 0 {
			image.WithAttr(mdast.AttrTitle, string(unescape(node.Title)))
		}
		return image

	case *ast.CodeSpan:
		return &mdast.Node{Type: mdast.CodeSpan, Raw: l.codeSpan(node)}

	case *ast.RawHTML:
		var raw strings.Builder
		for i := 0; i < node.Segments.Len(); i++ {
			segment := node.Segments.At(i)
			raw.Write(segment.Value(l.source))
		}
		return &mdast.Node{Type: mdast.InlineHTML, Raw: raw.String()}

	case *extast.TaskCheckBox:
		return mdast.New(mdast.TaskCheckBox).WithAttr(mdast.AttrChecked, node.IsChecked)

	default:
		return mdast.New(kindType(n), l.inlines(n)...)
	}
}

// codeSpan joins the span's segments. Goldmark keeps each source line of a
// multi-line span as its own segment, line ending included; those endings
// render as spaces.
func (l lowerer) codeSpan(node *ast.CodeSpan) string {
	var builder strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch segment := child.(type) {
		case *ast.Text:
			builder.Write(segment.Segment.Value(l.source))
		case *ast.String:
			builder.Write(segment.Value)
		}
	}
	return strings.ReplaceAll(builder.String(), "\n", " ")
}

func (l lowerer) lines(node ast.Node) string {
	var builder strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		builder.Write(line.Value(l.source))
	}
	return builder.String()
}

// unescape resolves entity references and backslash escapes the way the
// goldmark HTML writer does when it emits text, link destinations and info
// strings.
func unescape(value []byte) []byte {
	return util.UnescapePunctuations(util.ResolveNumericReferences(util.ResolveEntityNames(value)))
}

// kindType names nodes the lowerer has no mapping for after their goldmark
// kind, e.g. "definition_list". The converter drops them.
func kindType(n ast.Node) mdast.NodeType {
	name := n.Kind().String()
	var builder strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				builder.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		builder.WriteRune(r)
	}
	return mdast.NodeType(builder.String())
}
