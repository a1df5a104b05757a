package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-md2adf/internal/markdown"
)

var ErrLoggingProviderRequired = errors.New("md2adf config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("md2adf config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("md2adf config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("md2adf config: logging format is invalid")
var ErrMaxDepthInvalid = errors.New("md2adf config: converter max depth must be zero or positive")
var ErrParserExtensionUnknown = errors.New("md2adf config: parser extension is unknown")
var ErrFilesBasePathRequired = errors.New("md2adf config: files base path is required when file conversion is enabled")

// Config aggregates the converter, file workflow and logging settings.
type Config struct {
	Parser     ParserConfig
	Converter  ConverterConfig
	Files      FilesConfig
	Validation ValidationConfig
	Logging    LoggingConfig
	Features   Features
}

// ParserConfig mirrors interfaces.ParseOptions for runtime configuration.
type ParserConfig struct {
	Extensions []string
	HardWraps  bool
}

// ConverterConfig tunes the ADF converter.
type ConverterConfig struct {
	// MaxDepth caps container nesting. Zero disables the limit.
	MaxDepth        int
	CollectWarnings bool
}

// FilesConfig captures filesystem discovery for Markdown conversion.
type FilesConfig struct {
	Enabled          bool
	BasePath         string
	Pattern          string
	Recursive        bool
	StripFrontMatter bool
}

// ValidationConfig toggles schema validation of produced documents.
type ValidationConfig struct {
	Enabled bool
}

// Features toggles optional modules.
type Features struct {
	Logger bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the defaults used by the CLI and the root package.
func DefaultConfig() Config {
	return Config{
		Parser: ParserConfig{
			Extensions: []string{"table", "strikethrough"},
		},
		Converter: ConverterConfig{},
		Files: FilesConfig{
			BasePath:         ".",
			Pattern:          "*.md",
			Recursive:        true,
			StripFrontMatter: true,
		},
		Validation: ValidationConfig{},
		Features:   Features{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	for _, name := range cfg.Parser.Extensions {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if !markdown.KnownExtension(name) {
			return fmt.Errorf("%w: %s", ErrParserExtensionUnknown, name)
		}
	}
	if cfg.Converter.MaxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrMaxDepthInvalid, cfg.Converter.MaxDepth)
	}
	if cfg.Files.Enabled && strings.TrimSpace(cfg.Files.BasePath) == "" {
		return ErrFilesBasePathRequired
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
