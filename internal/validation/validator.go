// Package validation checks emitted ADF documents against an embedded JSON
// Schema describing the node subset the converter produces.
package validation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-md2adf/pkg/adf"
	"github.com/goliatone/go-md2adf/pkg/interfaces"
)

const schemaURL = "adf.schema.json"

//go:embed adf.schema.json
var schemaSource []byte

var (
	ErrSchemaInvalid   = errors.New("adf schema invalid")
	ErrDocumentInvalid = errors.New("adf document invalid")
)

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// DocumentValidationError lists the schema violations found in a document.
type DocumentValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *DocumentValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrDocumentInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *DocumentValidationError) Unwrap() error {
	return ErrDocumentInvalid
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var docErr *DocumentValidationError
	if errors.As(err, &docErr) && docErr != nil {
		return docErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// Validator holds the compiled ADF schema. It is safe for concurrent use.
type Validator struct {
	schema *jsonschema.Schema
}

var _ interfaces.DocumentValidator = (*Validator)(nil)

// New compiles the embedded schema.
func New() (*Validator, error) {
	compiled, err := compileSchema(schemaSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return &Validator{schema: compiled}, nil
}

// Validate encodes doc and checks it against the schema. Violations are
// returned as *DocumentValidationError.
func (v *Validator) Validate(doc adf.Document) error {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrDocumentInvalid, err)
	}
	return v.ValidateJSON(encoded)
}

// ValidateJSON checks an already encoded document.
func (v *Validator) ValidateJSON(data []byte) error {
	var payload any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrDocumentInvalid, err)
	}

	if err := v.schema.Validate(payload); err != nil {
		return &DocumentValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

func compileSchema(source []byte) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(schemaURL, bytes.NewReader(source)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
