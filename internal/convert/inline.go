package convert

import (
	"github.com/goliatone/go-md2adf/pkg/adf"
	"github.com/goliatone/go-md2adf/pkg/interfaces"
	"github.com/goliatone/go-md2adf/pkg/mdast"
)

// flatten walks inline nodes depth first and emits leaves. marks is the
// context inherited from enclosing containers; it is never modified in place,
// every extension allocates a new slice so sibling subtrees cannot observe
// each other's marks.
func (w *walker) flatten(nodes []*mdast.Node, marks []adf.Mark, depth int) []adf.Inline {
	var out []adf.Inline

	for _, node := range nodes {
		if node == nil {
			continue
		}

		switch node.Type {
		case mdast.Text:
			out = append(out, adf.Text{Text: node.Raw, Marks: cloneMarks(marks)})

		case mdast.Strong, mdast.Emphasis, mdast.Strikethrough:
			if !w.enter(node, depth+1) {
				continue
			}
			out = append(out, w.flatten(node.Children, withMark(marks, containerMark(node.Type)), depth+1)...)

		case mdast.Link:
			if !w.enter(node, depth+1) {
				continue
			}
			link := adf.Link{Href: node.StringAttr(mdast.AttrURL)}
			out = append(out, w.flatten(node.Children, withMark(marks, link), depth+1)...)

		case mdast.Image:
			out = append(out, imageText(node, marks))

		case mdast.CodeSpan:
			out = append(out, adf.Text{Text: node.Raw, Marks: withMark(marks, adf.Code{})})

		case mdast.SoftBreak:
			// Line boundaries collapse to a single space; adjacent spaces
			// are kept as is.
			out = append(out, adf.Text{Text: " ", Marks: cloneMarks(marks)})

		case mdast.LineBreak:
			out = append(out, adf.HardBreak{})

		default:
			w.drop(interfaces.WarningUnknownInline, node)
		}
	}

	return out
}

// imageText degrades an image to link-styled alt text. The alt text is the
// first child's text, falling back to the URL when the image has none.
func imageText(node *mdast.Node, marks []adf.Mark) adf.Text {
	url := node.StringAttr(mdast.AttrURL)
	alt := url
	if len(node.Children) > 0 {
		alt = node.Children[0].PlainText()
	}
	return adf.Text{Text: alt, Marks: withMark(marks, adf.Link{Href: url})}
}

func containerMark(kind mdast.NodeType) adf.Mark {
	switch kind {
	case mdast.Strong:
		return adf.Strong{}
	case mdast.Emphasis:
		return adf.Em{}
	default:
		return adf.Strike{}
	}
}

// withMark returns a new sequence holding marks followed by mark.
func withMark(marks []adf.Mark, mark adf.Mark) []adf.Mark {
	out := make([]adf.Mark, len(marks), len(marks)+1)
	copy(out, marks)
	return append(out, mark)
}

// cloneMarks copies marks for a leaf. An empty context yields nil so the
// marks key is omitted from the output.
func cloneMarks(marks []adf.Mark) []adf.Mark {
	if len(marks) == 0 {
		return nil
	}
	out := make([]adf.Mark, len(marks))
	copy(out, marks)
	return out
}
