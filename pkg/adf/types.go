package adf

// DocumentVersion is the only ADF version emitted.
const DocumentVersion = 1

// NodeType identifies a node variant in the serialized form.
type NodeType string

const (
	TypeDoc         NodeType = "doc"
	TypeParagraph   NodeType = "paragraph"
	TypeHeading     NodeType = "heading"
	TypeCodeBlock   NodeType = "codeBlock"
	TypeBlockquote  NodeType = "blockquote"
	TypeBulletList  NodeType = "bulletList"
	TypeOrderedList NodeType = "orderedList"
	TypeListItem    NodeType = "listItem"
	TypeRule        NodeType = "rule"
	TypeTable       NodeType = "table"
	TypeTableRow    NodeType = "tableRow"
	TypeTableHeader NodeType = "tableHeader"
	TypeTableCell   NodeType = "tableCell"
	TypeText        NodeType = "text"
	TypeHardBreak   NodeType = "hardBreak"
)

// MarkType identifies a mark variant in the serialized form.
type MarkType string

const (
	MarkStrong MarkType = "strong"
	MarkEm     MarkType = "em"
	MarkStrike MarkType = "strike"
	MarkCode   MarkType = "code"
	MarkLink   MarkType = "link"
)

// Document is the root "doc" node.
type Document struct {
	Version int
	Content []Block
}

// NewDocument returns a version 1 document holding content. A nil content
// slice is normalised to an empty one.
func NewDocument(content []Block) Document {
	if content == nil {
		content = []Block{}
	}
	return Document{Version: DocumentVersion, Content: content}
}

// Block is implemented by every block-level node.
type Block interface {
	NodeType() NodeType
	isBlock()
}

// Inline is implemented by every inline leaf.
type Inline interface {
	NodeType() NodeType
	isInline()
}

// Mark is implemented by every formatting mark. All marks are comparable so
// mark sequences can be compared element by element.
type Mark interface {
	MarkType() MarkType
	isMark()
}

// Paragraph holds inline content.
type Paragraph struct {
	Content []Inline
}

// Heading holds inline content and a level. The level is passed through as
// supplied by the parser.
type Heading struct {
	Level   int
	Content []Inline
}

// CodeBlock holds verbatim code. Language is omitted from the output when
// empty.
type CodeBlock struct {
	Language string
	Text     string
}

type Blockquote struct {
	Content []Block
}

type BulletList struct {
	Items []ListItem
}

type OrderedList struct {
	Items []ListItem
}

// ListItem holds block content, typically a paragraph followed by any nested
// lists.
type ListItem struct {
	Content []Block
}

type Rule struct{}

// Table holds rows in emission order: header rows first.
type Table struct {
	Rows []TableRow
}

// TableRow holds TableHeader or TableCell blocks.
type TableRow struct {
	Cells []Block
}

type TableHeader struct {
	Content []Block
}

type TableCell struct {
	Content []Block
}

// Text is an inline run with an ordered mark sequence, outermost first.
type Text struct {
	Text  string
	Marks []Mark
}

type HardBreak struct{}

type Strong struct{}

type Em struct{}

type Strike struct{}

type Code struct{}

// Link marks text as a hyperlink to Href.
type Link struct {
	Href string
}

func (Paragraph) NodeType() NodeType   { return TypeParagraph }
func (Heading) NodeType() NodeType     { return TypeHeading }
func (CodeBlock) NodeType() NodeType   { return TypeCodeBlock }
func (Blockquote) NodeType() NodeType  { return TypeBlockquote }
func (BulletList) NodeType() NodeType  { return TypeBulletList }
func (OrderedList) NodeType() NodeType { return TypeOrderedList }
func (ListItem) NodeType() NodeType    { return TypeListItem }
func (Rule) NodeType() NodeType        { return TypeRule }
func (Table) NodeType() NodeType       { return TypeTable }
func (TableRow) NodeType() NodeType    { return TypeTableRow }
func (TableHeader) NodeType() NodeType { return TypeTableHeader }
func (TableCell) NodeType() NodeType   { return TypeTableCell }
func (Text) NodeType() NodeType        { return TypeText }
func (HardBreak) NodeType() NodeType   { return TypeHardBreak }

func (Paragraph) isBlock()   {}
func (Heading) isBlock()     {}
func (CodeBlock) isBlock()   {}
func (Blockquote) isBlock()  {}
func (BulletList) isBlock()  {}
func (OrderedList) isBlock() {}
func (ListItem) isBlock()    {}
func (Rule) isBlock()        {}
func (Table) isBlock()       {}
func (TableRow) isBlock()    {}
func (TableHeader) isBlock() {}
func (TableCell) isBlock()   {}

func (Text) isInline()      {}
func (HardBreak) isInline() {}

func (Strong) MarkType() MarkType { return MarkStrong }
func (Em) MarkType() MarkType     { return MarkEm }
func (Strike) MarkType() MarkType { return MarkStrike }
func (Code) MarkType() MarkType   { return MarkCode }
func (Link) MarkType() MarkType   { return MarkLink }

func (Strong) isMark() {}
func (Em) isMark()     {}
func (Strike) isMark() {}
func (Code) isMark()   {}
func (Link) isMark()   {}

var (
	_ Block  = Paragraph{}
	_ Block  = TableCell{}
	_ Inline = Text{}
	_ Inline = HardBreak{}
	_ Mark   = Link{}
)
