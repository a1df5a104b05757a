package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-md2adf/pkg/interfaces"
)

const (
	rootModule     = "md2adf"
	convertModule  = "md2adf.convert"
	markdownModule = "md2adf.markdown"
	commandsModule = "md2adf.commands"
)

const (
	fieldFilePath = "file_path"
	fieldAction   = "action"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ConverterLogger returns the logger namespace reserved for the ADF converter.
func ConverterLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, convertModule)
}

// MarkdownLogger returns the logger namespace reserved for markdown file workflows.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// CommandLogger returns the logger for a command handler, e.g.
// "md2adf.commands.convert_file".
func CommandLogger(provider interfaces.LoggerProvider, command string) interfaces.Logger {
	module := commandsModule
	if trimmed := strings.TrimSpace(command); trimmed != "" {
		module += "." + trimmed
	}
	return ModuleLogger(provider, module)
}

// WithFileContext enriches the provided logger with the file path and action
// being performed. Empty values are ignored.
func WithFileContext(logger interfaces.Logger, path, action string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldFilePath] = trimmed
	}
	if trimmed := strings.TrimSpace(action); trimmed != "" {
		fields[fieldAction] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

// OrNoOp returns logger, or a no-op logger when it is nil.
func OrNoOp(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return NoOp()
	}
	return logger
}

type noopLogger struct{}

var (
	_ interfaces.Logger       = noopLogger{}
	_ interfaces.FieldsLogger = noopLogger{}
)

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
