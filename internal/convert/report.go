package convert

import (
	"github.com/goliatone/go-md2adf/pkg/interfaces"
	"github.com/goliatone/go-md2adf/pkg/mdast"
)

// report accumulates warnings. A nil report discards them.
type report struct {
	warnings []interfaces.ConversionWarning
}

func (r *report) add(kind interfaces.WarningType, nodeType mdast.NodeType, message string) {
	if r == nil {
		return
	}
	r.warnings = append(r.warnings, interfaces.ConversionWarning{
		Type:     kind,
		NodeType: string(nodeType),
		Message:  message,
	})
}
