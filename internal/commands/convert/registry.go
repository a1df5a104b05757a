package convertcmd

import (
	"io"

	"github.com/goliatone/go-md2adf/internal/commands"
	"github.com/goliatone/go-md2adf/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the handlers produced by RegisterConvertCommands.
type HandlerSet struct {
	File      *ConvertFileHandler
	Directory *ConvertDirectoryHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	stdout          io.Writer
	fileHandlerOpts []commands.HandlerOption[ConvertFileCommand]
	dirHandlerOpts  []commands.HandlerOption[ConvertDirectoryCommand]
}

// WithStdout sets the writer used for the "-" output target.
func WithStdout(w io.Writer) Option {
	return func(cfg *options) {
		cfg.stdout = w
	}
}

// WithFileHandlerOptions forwards options to the ConvertFileHandler constructor.
func WithFileHandlerOptions(opts ...commands.HandlerOption[ConvertFileCommand]) Option {
	return func(cfg *options) {
		cfg.fileHandlerOpts = append(cfg.fileHandlerOpts, opts...)
	}
}

// WithDirectoryHandlerOptions forwards options to the ConvertDirectoryHandler constructor.
func WithDirectoryHandlerOptions(opts ...commands.HandlerOption[ConvertDirectoryCommand]) Option {
	return func(cfg *options) {
		cfg.dirHandlerOpts = append(cfg.dirHandlerOpts, opts...)
	}
}

// RegisterConvertCommands builds the convert handlers and registers them with
// reg when one is supplied.
func RegisterConvertCommands(reg CommandRegistry, service interfaces.MarkdownService, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, ErrServiceRequired
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "convert")

	fileHandler := NewConvertFileHandler(service, logger, cfg.stdout, cfg.fileHandlerOpts...)
	dirHandler := NewConvertDirectoryHandler(service, logger, cfg.dirHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(fileHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(dirHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		File:      fileHandler,
		Directory: dirHandler,
	}, nil
}
