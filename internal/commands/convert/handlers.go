package convertcmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-md2adf/internal/commands"
	"github.com/goliatone/go-md2adf/internal/logging"
	"github.com/goliatone/go-md2adf/pkg/adf"
	"github.com/goliatone/go-md2adf/pkg/interfaces"
)

const (
	convertFileOperation      = "convert.file"
	convertDirectoryOperation = "convert.directory"

	// StdoutTarget selects the handler's standard output as the write target.
	StdoutTarget = "-"
	outputSuffix = ".adf.json"
)

var (
	// ErrServiceRequired is returned when a handler is built without a markdown service.
	ErrServiceRequired = errors.New("convert command: markdown service is required")
	// ErrConversionFailures is returned when one or more files in a directory run failed.
	ErrConversionFailures = errors.New("convert command: one or more files failed")
)

var (
	_ command.Commander[ConvertFileCommand]      = (*ConvertFileHandler)(nil)
	_ command.Commander[ConvertDirectoryCommand] = (*ConvertDirectoryHandler)(nil)
)

// ConvertFileHandler converts single files via the shared command handler foundation.
type ConvertFileHandler struct {
	inner *commands.Handler[ConvertFileCommand]
}

// NewConvertFileHandler creates a handler bound to the supplied Markdown service.
// stdout receives documents for the "-" output target and defaults to os.Stdout.
func NewConvertFileHandler(service interfaces.MarkdownService, logger interfaces.Logger, stdout io.Writer, opts ...commands.HandlerOption[ConvertFileCommand]) *ConvertFileHandler {
	baseLogger := logging.OrNoOp(logger)
	if stdout == nil {
		stdout = os.Stdout
	}

	exec := func(ctx context.Context, msg ConvertFileCommand) error {
		if service == nil {
			return ErrServiceRequired
		}

		doc, err := service.ConvertFile(ctx, msg.Path)
		if err != nil {
			return err
		}
		if err := writeDocument(stdout, msg.Output, doc.ADF); err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"path":     doc.FilePath,
			"blocks":   len(doc.ADF.Content),
			"warnings": len(doc.Warnings),
		}).Info("convert.command.file.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ConvertFileCommand]{
		commands.WithLogger[ConvertFileCommand](baseLogger),
		commands.WithOperation[ConvertFileCommand](convertFileOperation),
		commands.WithMessageFields(func(msg ConvertFileCommand) map[string]any {
			fields := map[string]any{
				"path": msg.Path,
			}
			if msg.Output != "" {
				fields["output"] = msg.Output
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ConvertFileCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertFileHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ConvertFileCommand].
func (h *ConvertFileHandler) Execute(ctx context.Context, msg ConvertFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ConvertDirectoryHandler converts directories via the shared command handler foundation.
type ConvertDirectoryHandler struct {
	inner *commands.Handler[ConvertDirectoryCommand]
}

// NewConvertDirectoryHandler creates a handler bound to the supplied Markdown service.
// Successfully converted files are written even when others fail; the failures
// are then reported together, wrapped in ErrConversionFailures.
func NewConvertDirectoryHandler(service interfaces.MarkdownService, logger interfaces.Logger, opts ...commands.HandlerOption[ConvertDirectoryCommand]) *ConvertDirectoryHandler {
	baseLogger := logging.OrNoOp(logger)

	exec := func(ctx context.Context, msg ConvertDirectoryCommand) error {
		if service == nil {
			return ErrServiceRequired
		}

		result, err := service.ConvertDirectory(ctx, msg.Directory, interfaces.ConvertOptions{
			Pattern:   msg.Pattern,
			Recursive: msg.Recursive,
		})
		if err != nil {
			return err
		}

		written := 0
		if strings.TrimSpace(msg.OutputDir) != "" {
			for _, doc := range result.Documents {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := writeDocument(nil, OutputPath(msg.OutputDir, doc.FilePath), doc.ADF); err != nil {
					return err
				}
				written++
			}
		}

		logging.WithFields(baseLogger, map[string]any{
			"directory":   msg.Directory,
			"documents":   len(result.Documents),
			"written":     written,
			"error_count": len(result.Errors),
		}).Info("convert.command.directory.completed")

		if len(result.Errors) > 0 {
			return fmt.Errorf("%w: %w", ErrConversionFailures, errors.Join(result.Errors...))
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ConvertDirectoryCommand]{
		commands.WithLogger[ConvertDirectoryCommand](baseLogger),
		commands.WithOperation[ConvertDirectoryCommand](convertDirectoryOperation),
		commands.WithMessageFields(func(msg ConvertDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.OutputDir != "" {
				fields["output_dir"] = msg.OutputDir
			}
			if msg.Pattern != "" {
				fields["pattern"] = msg.Pattern
			}
			if msg.Recursive != nil {
				fields["recursive"] = *msg.Recursive
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ConvertDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ConvertDirectoryCommand].
func (h *ConvertDirectoryHandler) Execute(ctx context.Context, msg ConvertDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// OutputPath maps a source path onto its output file under dir, e.g.
// "guides/intro.md" becomes "<dir>/guides/intro.adf.json".
func OutputPath(dir, sourcePath string) string {
	rel := filepath.FromSlash(sourcePath)
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + outputSuffix
	return filepath.Join(dir, rel)
}

// writeDocument encodes doc as indented JSON. An empty target writes nothing.
func writeDocument(stdout io.Writer, target string, doc adf.Document) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil
	}

	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("convert command: encode document: %w", err)
	}
	encoded = append(encoded, '\n')

	if target == StdoutTarget {
		if stdout == nil {
			stdout = os.Stdout
		}
		if _, err := stdout.Write(encoded); err != nil {
			return fmt.Errorf("convert command: write stdout: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("convert command: create output dir: %w", err)
	}
	if err := os.WriteFile(target, encoded, 0o644); err != nil {
		return fmt.Errorf("convert command: write %s: %w", target, err)
	}
	return nil
}
