package validation

import (
	"errors"
	"testing"

	"github.com/goliatone/go-md2adf/pkg/adf"
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	validator, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return validator
}

func TestValidatorAcceptsEmittedNodes(t *testing.T) {
	validator := newValidator(t)

	doc := adf.NewDocument([]adf.Block{
		adf.Heading{Level: 2, Content: []adf.Inline{adf.Text{Text: "Title"}}},
		adf.Heading{Level: 1},
		adf.Paragraph{Content: []adf.Inline{
			adf.Text{Text: "plain "},
			adf.Text{Text: "bold link", Marks: []adf.Mark{adf.Strong{}, adf.Link{Href: "https://example.com"}}},
			adf.HardBreak{},
			adf.Text{Text: "code", Marks: []adf.Mark{adf.Code{}}},
		}},
		adf.CodeBlock{Language: "go", Text: "x := 1\n"},
		adf.CodeBlock{},
		adf.Blockquote{Content: []adf.Block{adf.Paragraph{}}},
		adf.BulletList{Items: []adf.ListItem{{Content: []adf.Block{adf.Paragraph{Content: []adf.Inline{adf.Text{Text: "a"}}}}}}},
		adf.OrderedList{},
		adf.Rule{},
		adf.Table{Rows: []adf.TableRow{
			{Cells: []adf.Block{adf.TableHeader{Content: []adf.Block{adf.Paragraph{}}}}},
			{Cells: []adf.Block{adf.TableCell{Content: []adf.Block{adf.Paragraph{}}}}},
		}},
	})

	if err := validator.Validate(doc); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
	if err := validator.Validate(adf.NewDocument(nil)); err != nil {
		t.Fatalf("expected empty document to be valid, got %v", err)
	}
}

func TestValidatorRejectsInvalidDocuments(t *testing.T) {
	validator := newValidator(t)

	cases := []struct {
		name string
		doc  adf.Document
	}{
		{
			name: "heading level out of range",
			doc:  adf.NewDocument([]adf.Block{adf.Heading{Level: 0}}),
		},
		{
			name: "list item outside a list",
			doc:  adf.NewDocument([]adf.Block{adf.ListItem{}}),
		},
		{
			name: "table row at top level",
			doc:  adf.NewDocument([]adf.Block{adf.TableRow{}}),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.Validate(tc.doc)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !errors.Is(err, ErrDocumentInvalid) {
				t.Fatalf("expected ErrDocumentInvalid, got %v", err)
			}
			if len(Issues(err)) == 0 {
				t.Fatalf("expected issues, got none")
			}
		})
	}
}

func TestValidateJSON(t *testing.T) {
	validator := newValidator(t)

	if err := validator.ValidateJSON([]byte(`{"version":1,"type":"doc","content":[]}`)); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}

	err := validator.ValidateJSON([]byte(`{"version":2,"type":"doc","content":[]}`))
	if err == nil {
		t.Fatalf("expected version mismatch to fail")
	}
	var docErr *DocumentValidationError
	if !errors.As(err, &docErr) {
		t.Fatalf("expected DocumentValidationError, got %T", err)
	}

	if err := validator.ValidateJSON([]byte(`{`)); !errors.Is(err, ErrDocumentInvalid) {
		t.Fatalf("expected decode failure to wrap ErrDocumentInvalid, got %v", err)
	}
}

func TestIssuesFallback(t *testing.T) {
	issues := Issues(errors.New("boom"))
	if len(issues) != 1 || issues[0].Message != "boom" {
		t.Fatalf("unexpected issues %#v", issues)
	}
	if Issues(nil) != nil {
		t.Fatalf("expected nil issues for nil error")
	}
}
