// Package mdast defines the parsed Markdown tree consumed by the converter.
// Front ends lower their native syntax trees into Node values; the converter
// only reads them.
package mdast

import (
	"math"
	"strconv"
	"strings"
)

// NodeType tags a parsed node.
type NodeType string

// Block node types.
const (
	Paragraph     NodeType = "paragraph"
	Heading       NodeType = "heading"
	BlockCode     NodeType = "block_code"
	BlockQuote    NodeType = "block_quote"
	BlockHTML     NodeType = "block_html"
	List          NodeType = "list"
	ListItem      NodeType = "list_item"
	BlockText     NodeType = "block_text"
	ThematicBreak NodeType = "thematic_break"
	Table         NodeType = "table"
	TableHead     NodeType = "table_head"
	TableBody     NodeType = "table_body"
	TableRow      NodeType = "table_row"
	TableCell     NodeType = "table_cell"
)

// Inline node types.
const (
	Text          NodeType = "text"
	Strong        NodeType = "strong"
	Emphasis      NodeType = "emphasis"
	Strikethrough NodeType = "strikethrough"
	Link          NodeType = "link"
	Image         NodeType = "image"
	CodeSpan      NodeType = "codespan"
	SoftBreak     NodeType = "softbreak"
	LineBreak     NodeType = "linebreak"
	InlineHTML    NodeType = "inline_html"
	TaskCheckBox  NodeType = "task_checkbox"
)

// Attribute keys set by front ends.
const (
	AttrLevel   = "level"
	AttrOrdered = "ordered"
	AttrStart   = "start"
	AttrTight   = "tight"
	AttrInfo    = "info"
	AttrURL     = "url"
	AttrTitle   = "title"
	AttrAlign   = "align"
	AttrHead    = "head"
	AttrChecked = "checked"
)

// Node is a parsed Markdown node. Raw carries the literal payload for leaves
// (text, code) and Children the ordered child nodes for containers.
type Node struct {
	Type     NodeType       `json:"type"`
	Raw      string         `json:"raw,omitempty"`
	Attrs    map[string]any `json:"attrs,omitempty"`
	Children []*Node        `json:"children,omitempty"`
}

// Attr returns the raw attribute value.
func (n *Node) Attr(key string) (any, bool) {
	if n == nil || n.Attrs == nil {
		return nil, false
	}
	value, ok := n.Attrs[key]
	return value, ok
}

// StringAttr returns the attribute as a string, or "" when absent.
func (n *Node) StringAttr(key string) string {
	value, ok := n.Attr(key)
	if !ok || value == nil {
		return ""
	}
	switch typed := value.(type) {
	case string:
		return typed
	case []byte:
		return string(typed)
	default:
		return ""
	}
}

// BoolAttr returns the attribute as a bool. Strings are parsed with
// strconv.ParseBool; anything else is false.
func (n *Node) BoolAttr(key string) bool {
	value, ok := n.Attr(key)
	if !ok {
		return false
	}
	switch typed := value.(type) {
	case bool:
		return typed
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(typed))
		return err == nil && parsed
	default:
		return false
	}
}

// IntAttr returns the attribute as an int. Decoded JSON numbers (float64)
// are truncated; non-numeric values yield 0.
func (n *Node) IntAttr(key string) int {
	value, ok := n.Attr(key)
	if !ok {
		return 0
	}
	switch typed := value.(type) {
	case int:
		return typed
	case int8:
		return int(typed)
	case int16:
		return int(typed)
	case int32:
		return int(typed)
	case int64:
		return int(typed)
	case uint8:
		return int(typed)
	case uint16:
		return int(typed)
	case uint32:
		return int(typed)
	case float32:
		return int(typed)
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return 0
		}
		return int(typed)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(typed))
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// PlainText concatenates the raw payloads of the node and its descendants in
// document order.
func (n *Node) PlainText() string {
	if n == nil {
		return ""
	}
	if len(n.Children) == 0 {
		return n.Raw
	}
	var builder strings.Builder
	builder.WriteString(n.Raw)
	for _, child := range n.Children {
		builder.WriteString(child.PlainText())
	}
	return builder.String()
}

// New builds a node with the supplied children.
func New(kind NodeType, children ...*Node) *Node {
	return &Node{Type: kind, Children: children}
}

// NewText builds a text leaf.
func NewText(raw string) *Node {
	return &Node{Type: Text, Raw: raw}
}

// WithAttr sets an attribute and returns the node for chaining.
func (n *Node) WithAttr(key string, value any) *Node {
	if n.Attrs == nil {
		n.Attrs = map[string]any{}
	}
	n.Attrs[key] = value
	return n
}
