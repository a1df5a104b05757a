// Package md2adf converts Markdown into Atlassian Document Format (ADF)
// documents whose inline formatting is expressed as flat mark lists.
//
// Convert covers the common case with the default goldmark front end. New
// builds a Module from Config for hosts that need file workflows, schema
// validation, logging or the convert command handlers.
package md2adf

import (
	"context"

	convertcmd "github.com/goliatone/go-md2adf/internal/commands/convert"
	"github.com/goliatone/go-md2adf/internal/convert"
	"github.com/goliatone/go-md2adf/internal/di"
	"github.com/goliatone/go-md2adf/internal/markdown"
	"github.com/goliatone/go-md2adf/pkg/adf"
	"github.com/goliatone/go-md2adf/pkg/interfaces"
)

// Document exports the ADF root node.
type Document = adf.Document

// ConversionReport exports the document plus warnings returned by ConvertWithReport.
type ConversionReport = interfaces.ConversionReport

// ConversionWarning exports the warning DTO recorded for dropped content.
type ConversionWarning = interfaces.ConversionWarning

// MarkdownService exports the file workflow contract.
type MarkdownService = interfaces.MarkdownService

// ConvertFileCommand exports the single file command message.
type ConvertFileCommand = convertcmd.ConvertFileCommand

// ConvertDirectoryCommand exports the directory command message.
type ConvertDirectoryCommand = convertcmd.ConvertDirectoryCommand

// StdoutTarget selects standard output as the destination of ConvertFileCommand.
const StdoutTarget = convertcmd.StdoutTarget

var defaultConverter = convert.New(markdown.NewGoldmarkParser(interfaces.ParseOptions{}))

// Convert parses markdown with the default front end (tables and
// strikethrough enabled) and returns the ADF document. Blank input yields an
// empty document.
func Convert(markdown string) Document {
	return defaultConverter.Convert(markdown)
}

// Module represents the top level converter runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Converter returns the configured converter.
func (m *Module) Converter() interfaces.DocumentConverter {
	return m.container.Converter()
}

// Validator returns the schema validator, nil unless validation is enabled.
func (m *Module) Validator() interfaces.DocumentValidator {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Validator()
}

// Markdown returns the file service, nil unless file conversion is enabled.
func (m *Module) Markdown() MarkdownService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.MarkdownService()
}

// Convert converts raw Markdown with the configured converter and, when
// enabled, validates the result.
func (m *Module) Convert(ctx context.Context, markdown []byte) (*ConversionReport, error) {
	if svc := m.Markdown(); svc != nil {
		return svc.Convert(ctx, markdown)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := m.container.Converter().ConvertWithReport(string(markdown))
	if validator := m.Validator(); validator != nil {
		if err := validator.Validate(report.Document); err != nil {
			return nil, err
		}
	}
	return &report, nil
}
