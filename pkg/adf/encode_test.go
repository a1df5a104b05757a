package adf

import (
	"encoding/json"
	"testing"
)

func TestMarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		node any
		want string
	}{
		{
			name: "empty document",
			node: NewDocument(nil),
			want: `{"version":1,"type":"doc","content":[]}`,
		},
		{
			name: "zero document defaults version",
			node: Document{},
			want: `{"version":1,"type":"doc","content":[]}`,
		},
		{
			name: "plain text omits marks",
			node: Text{Text: "hi"},
			want: `{"type":"text","text":"hi"}`,
		},
		{
			name: "empty text keeps text key",
			node: Text{},
			want: `{"type":"text","text":""}`,
		},
		{
			name: "marks keep order",
			node: Text{Text: "x", Marks: []Mark{Em{}, Strong{}, Link{Href: "http://x"}}},
			want: `{"type":"text","text":"x","marks":[{"type":"em"},{"type":"strong"},{"type":"link","attrs":{"href":"http://x"}}]}`,
		},
		{
			name: "heading without content",
			node: Heading{Level: 2},
			want: `{"type":"heading","attrs":{"level":2}}`,
		},
		{
			name: "heading with content",
			node: Heading{Level: 1, Content: []Inline{Text{Text: "T"}}},
			want: `{"type":"heading","attrs":{"level":1},"content":[{"type":"text","text":"T"}]}`,
		},
		{
			name: "code block without language",
			node: CodeBlock{Text: ""},
			want: `{"type":"codeBlock","content":[{"type":"text","text":""}]}`,
		},
		{
			name: "code block with language",
			node: CodeBlock{Language: "python", Text: "print('hello')\n"},
			want: `{"type":"codeBlock","attrs":{"language":"python"},"content":[{"type":"text","text":"print('hello')\n"}]}`,
		},
		{
			name: "rule",
			node: Rule{},
			want: `{"type":"rule"}`,
		},
		{
			name: "hard break",
			node: HardBreak{},
			want: `{"type":"hardBreak"}`,
		},
		{
			name: "empty table cell keeps empty paragraph content",
			node: TableCell{Content: []Block{Paragraph{}}},
			want: `{"type":"tableCell","content":[{"type":"paragraph","content":[]}]}`,
		},
		{
			name: "lists",
			node: OrderedList{Items: []ListItem{{Content: []Block{BulletList{}}}}},
			want: `{"type":"orderedList","content":[{"type":"listItem","content":[{"type":"bulletList","content":[]}]}]}`,
		},
		{
			name: "table rows",
			node: Table{Rows: []TableRow{{Cells: []Block{TableHeader{Content: []Block{Paragraph{}}}}}}},
			want: `{"type":"table","content":[{"type":"tableRow","content":[{"type":"tableHeader","content":[{"type":"paragraph","content":[]}]}]}]}`,
		},
		{
			name: "blockquote",
			node: Blockquote{Content: []Block{Rule{}}},
			want: `{"type":"blockquote","content":[{"type":"rule"}]}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.node)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("unexpected JSON\nwant: %s\ngot:  %s", tc.want, got)
			}
		})
	}
}

func TestMarshalJSONEscapesText(t *testing.T) {
	got, err := json.Marshal(Text{Text: `a "quoted" <b>`})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["text"] != `a "quoted" <b>` {
		t.Fatalf("unexpected text %q", decoded["text"])
	}
}

func TestMarksEqual(t *testing.T) {
	if !MarksEqual(nil, []Mark{}) {
		t.Fatalf("expected nil and empty to be equal")
	}
	if !MarksEqual([]Mark{Strong{}, Link{Href: "a"}}, []Mark{Strong{}, Link{Href: "a"}}) {
		t.Fatalf("expected identical sequences to be equal")
	}
	if MarksEqual([]Mark{Strong{}, Em{}}, []Mark{Em{}, Strong{}}) {
		t.Fatalf("expected order to matter")
	}
	if MarksEqual([]Mark{Link{Href: "a"}}, []Mark{Link{Href: "b"}}) {
		t.Fatalf("expected hrefs to be compared")
	}
}
