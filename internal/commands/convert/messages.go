package convertcmd

import (
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	convertFileMessageType      = "md2adf.convert.file"
	convertDirectoryMessageType = "md2adf.convert.directory"
)

// ConvertFileCommand converts a single Markdown file. When Output is set the
// document is written there as indented JSON; "-" selects the handler's
// standard output.
type ConvertFileCommand struct {
	Path   string `json:"path"`
	Output string `json:"output,omitempty"`
}

// Type implements command.Message.
func (ConvertFileCommand) Type() string { return convertFileMessageType }

// Validate ensures a path is present before handlers execute.
func (cmd ConvertFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Path, validation.Required, validation.By(notBlank("md2adf.convert.file.path_required", "path is required"))),
	)
}

// ConvertDirectoryCommand converts every Markdown file under Directory. With
// OutputDir set, each document is written to OutputDir mirroring its relative
// path with a ".adf.json" extension.
type ConvertDirectoryCommand struct {
	Directory string `json:"directory"`
	OutputDir string `json:"output_dir,omitempty"`
	// Pattern overrides the configured file glob for this run.
	Pattern string `json:"pattern,omitempty"`
	// Recursive overrides the configured recursion flag for this run.
	Recursive *bool `json:"recursive,omitempty"`
}

// Type implements command.Message.
func (ConvertDirectoryCommand) Type() string { return convertDirectoryMessageType }

// Validate ensures directory input is present and the pattern is a valid glob.
func (cmd ConvertDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(notBlank("md2adf.convert.directory.directory_required", "directory is required"))),
		validation.Field(&cmd.Pattern, validation.By(func(value any) error {
			pattern, _ := value.(string)
			if strings.TrimSpace(pattern) == "" {
				return nil
			}
			if _, err := filepath.Match(pattern, ""); err != nil {
				return validation.NewError("md2adf.convert.directory.pattern_invalid", "pattern is not a valid glob")
			}
			return nil
		})),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
