package logging

import (
	"maps"

	"github.com/goliatone/go-md2adf/pkg/interfaces"
)

// WithFields returns logger with fields attached when it implements
// interfaces.FieldsLogger, and logger unchanged otherwise.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	fl, ok := logger.(interfaces.FieldsLogger)
	if !ok || len(fields) == 0 {
		return logger
	}
	return fl.WithFields(maps.Clone(fields))
}
