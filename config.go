package md2adf

import "github.com/goliatone/go-md2adf/internal/runtimeconfig"

var (
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
	ErrMaxDepthInvalid         = runtimeconfig.ErrMaxDepthInvalid
	ErrParserExtensionUnknown  = runtimeconfig.ErrParserExtensionUnknown
	ErrFilesBasePathRequired   = runtimeconfig.ErrFilesBasePathRequired
)

type (
	Config           = runtimeconfig.Config
	ParserConfig     = runtimeconfig.ParserConfig
	ConverterConfig  = runtimeconfig.ConverterConfig
	FilesConfig      = runtimeconfig.FilesConfig
	ValidationConfig = runtimeconfig.ValidationConfig
	LoggingConfig    = runtimeconfig.LoggingConfig
	Features         = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
