package graph

import (
	"fmt"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters/dgml"
	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters/dot"
	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters/jsdata"
	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters/mermaid"
	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters/plain"
	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters/vis"
)

// NewFormatter creates a Formatter for the specified format type.
func NewFormatter(format string) (formatters.Formatter, error) {
	f, ok := formatters.ParseOutputFormat(format)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (valid options: %s)", format, formatters.SupportedFormats())
	}

	switch f {
	case formatters.OutputFormatPlain:
		return &plain.Formatter{}, nil
	case formatters.OutputFormatDOT:
		return &dot.Formatter{}, nil
	case formatters.OutputFormatDGML:
		return &dgml.Formatter{}, nil
	case formatters.OutputFormatJS:
		return &jsdata.JSFormatter{}, nil
	case formatters.OutputFormatRaw:
		return &jsdata.RawFormatter{}, nil
	case formatters.OutputFormatVis:
		return &vis.Formatter{}, nil
	case formatters.OutputFormatMermaid:
		return &mermaid.Formatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: %s)", format, formatters.SupportedFormats())
	}
}
