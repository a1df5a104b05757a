package di

import (
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-md2adf/internal/convert"
	"github.com/goliatone/go-md2adf/internal/logging"
	"github.com/goliatone/go-md2adf/internal/logging/console"
	"github.com/goliatone/go-md2adf/internal/logging/gologger"
	"github.com/goliatone/go-md2adf/internal/markdown"
	"github.com/goliatone/go-md2adf/internal/runtimeconfig"
	"github.com/goliatone/go-md2adf/internal/validation"
	"github.com/goliatone/go-md2adf/pkg/interfaces"
)

const containerModule = "md2adf.container"

// Container wires the parser, converter, validator and file service from a
// runtime configuration. Collaborators supplied through options take
// precedence over the ones built from configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logWriter      io.Writer

	parser    interfaces.MarkdownParser
	converter interfaces.DocumentConverter
	validator interfaces.DocumentValidator
	service   interfaces.MarkdownService
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithLogWriter sets the destination of the console logger. Defaults to
// os.Stderr so standard output stays free for documents.
func WithLogWriter(w io.Writer) Option {
	return func(c *Container) {
		if w != nil {
			c.logWriter = w
		}
	}
}

// WithParser overrides the goldmark front end.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		if parser != nil {
			c.parser = parser
		}
	}
}

// WithConverter overrides the ADF converter.
func WithConverter(converter interfaces.DocumentConverter) Option {
	return func(c *Container) {
		if converter != nil {
			c.converter = converter
		}
	}
}

// WithValidator installs a document validator even when schema validation
// is disabled in the configuration.
func WithValidator(validator interfaces.DocumentValidator) Option {
	return func(c *Container) {
		if validator != nil {
			c.validator = validator
		}
	}
}

// WithMarkdownService overrides the filesystem-backed Markdown service.
func WithMarkdownService(svc interfaces.MarkdownService) Option {
	return func(c *Container) {
		if svc != nil {
			c.service = svc
		}
	}
}

// NewContainer validates cfg and builds every configured collaborator.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:    cfg,
		logWriter: os.Stderr,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.configureConverter()
	if err := c.configureValidator(); err != nil {
		return nil, err
	}
	if err := c.configureMarkdownService(); err != nil {
		return nil, err
	}

	logging.ModuleLogger(c.loggerProvider, containerModule).Info("container.configured",
		"extensions", strings.Join(cfg.Parser.Extensions, ","),
		"max_depth", cfg.Converter.MaxDepth,
		"warnings", cfg.Converter.CollectWarnings,
		"validation", c.validator != nil,
		"files", c.service != nil,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	cfg := c.Config.Logging
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		level, err := console.ParseLevel(cfg.Level)
		if err != nil {
			return err
		}
		c.loggerProvider = console.NewProvider(console.Options{
			Writer: c.logWriter,
			Level:  level,
		})
	}
	return nil
}

func (c *Container) configureConverter() {
	if c.converter != nil {
		return
	}
	if c.parser == nil {
		c.parser = markdown.NewGoldmarkParser(c.parseOptions())
	}
	c.converter = convert.New(c.parser,
		convert.WithLogger(logging.ConverterLogger(c.loggerProvider)),
		convert.WithMaxDepth(c.Config.Converter.MaxDepth),
		convert.WithWarnings(c.Config.Converter.CollectWarnings),
	)
}

func (c *Container) configureValidator() error {
	if c.validator != nil || !c.Config.Validation.Enabled {
		return nil
	}
	validator, err := validation.New()
	if err != nil {
		return err
	}
	c.validator = validator
	return nil
}

func (c *Container) configureMarkdownService() error {
	if c.service != nil || !c.Config.Files.Enabled {
		return nil
	}

	opts := []markdown.ServiceOption{
		markdown.WithLogger(logging.MarkdownLogger(c.loggerProvider)),
	}
	if c.validator != nil {
		opts = append(opts, markdown.WithValidator(c.validator))
	}

	files := c.Config.Files
	svc, err := markdown.NewService(markdown.Config{
		BasePath:         files.BasePath,
		Pattern:          files.Pattern,
		Recursive:        files.Recursive,
		StripFrontMatter: files.StripFrontMatter,
		Parser:           c.parseOptions(),
	}, c.converter, opts...)
	if err != nil {
		return err
	}
	c.service = svc
	return nil
}

func (c *Container) parseOptions() interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: append([]string(nil), c.Config.Parser.Extensions...),
		HardWraps:  c.Config.Parser.HardWraps,
	}
}

// LoggerProvider returns the configured provider, nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Parser returns the front end used by the default converter. It is nil when
// a converter was injected without a parser.
func (c *Container) Parser() interfaces.MarkdownParser {
	return c.parser
}

func (c *Container) Converter() interfaces.DocumentConverter {
	return c.converter
}

// Validator returns the document validator, nil when validation is disabled.
func (c *Container) Validator() interfaces.DocumentValidator {
	return c.validator
}

// MarkdownService returns the file service, nil when file conversion is disabled.
func (c *Container) MarkdownService() interfaces.MarkdownService {
	return c.service
}
