package adf

import (
	"encoding/json"
	"slices"
)

// wireNode is the serialized shape shared by every node. Content is an
// interface so callers decide between omitting the key (nil) and emitting an
// empty array (non-nil empty slice).
type wireNode struct {
	Version int            `json:"version,omitempty"`
	Type    NodeType       `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content any            `json:"content,omitempty"`
	Text    *string        `json:"text,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
}

type wireMark struct {
	Type  MarkType       `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// MarshalJSON encodes the document as {"version":1,"type":"doc","content":[...]}.
func (d Document) MarshalJSON() ([]byte, error) {
	version := d.Version
	if version == 0 {
		version = DocumentVersion
	}
	return json.Marshal(wireNode{
		Version: version,
		Type:    TypeDoc,
		Content: blocks(d.Content),
	})
}

func (p Paragraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireNode{Type: TypeParagraph, Content: inlines(p.Content)})
}

func (h Heading) MarshalJSON() ([]byte, error) {
	node := wireNode{
		Type:  TypeHeading,
		Attrs: map[string]any{"level": h.Level},
	}
	if len(h.Content) > 0 {
		node.Content = h.Content
	}
	return json.Marshal(node)
}

func (c CodeBlock) MarshalJSON() ([]byte, error) {
	node := wireNode{
		Type:    TypeCodeBlock,
		Content: []Inline{Text{Text: c.Text}},
	}
	if c.Language != "" {
		node.Attrs = map[string]any{"language": c.Language}
	}
	return json.Marshal(node)
}

func (b Blockquote) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireNode{Type: TypeBlockquote, Content: blocks(b.Content)})
}

func (l BulletList) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireNode{Type: TypeBulletList, Content: items(l.Items)})
}

func (l OrderedList) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireNode{Type: TypeOrderedList, Content: items(l.Items)})
}

func (i ListItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireNode{Type: TypeListItem, Content: blocks(i.Content)})
}

func (Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireNode{Type: TypeRule})
}

func (t Table) MarshalJSON() ([]byte, error) {
	rows := t.Rows
	if rows == nil {
		rows = []TableRow{}
	}
	return json.Marshal(wireNode{Type: TypeTable, Content: rows})
}

func (r TableRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireNode{Type: TypeTableRow, Content: blocks(r.Cells)})
}

func (c TableHeader) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireNode{Type: TypeTableHeader, Content: blocks(c.Content)})
}

func (c TableCell) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireNode{Type: TypeTableCell, Content: blocks(c.Content)})
}

func (t Text) MarshalJSON() ([]byte, error) {
	text := t.Text
	return json.Marshal(wireNode{Type: TypeText, Text: &text, Marks: t.Marks})
}

func (HardBreak) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireNode{Type: TypeHardBreak})
}

func (Strong) MarshalJSON() ([]byte, error) { return json.Marshal(wireMark{Type: MarkStrong}) }
func (Em) MarshalJSON() ([]byte, error)     { return json.Marshal(wireMark{Type: MarkEm}) }
func (Strike) MarshalJSON() ([]byte, error) { return json.Marshal(wireMark{Type: MarkStrike}) }
func (Code) MarshalJSON() ([]byte, error)   { return json.Marshal(wireMark{Type: MarkCode}) }

func (l Link) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireMark{
		Type:  MarkLink,
		Attrs: map[string]any{"href": l.Href},
	})
}

func blocks(content []Block) []Block {
	if content == nil {
		return []Block{}
	}
	return content
}

func inlines(content []Inline) []Inline {
	if content == nil {
		return []Inline{}
	}
	return content
}

func items(content []ListItem) []ListItem {
	if content == nil {
		return []ListItem{}
	}
	return content
}

// MarksEqual reports whether two mark sequences hold the same marks in the
// same order. Nil and empty sequences are equal.
func MarksEqual(a, b []Mark) bool {
	return slices.Equal(a, b)
}
