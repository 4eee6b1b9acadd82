package formatters

import "strings"

// OutputFormat represents an output format type
type OutputFormat string

const (
	OutputFormatPlain   OutputFormat = "plain"
	OutputFormatDOT     OutputFormat = "dot"
	OutputFormatDGML    OutputFormat = "dgml"
	OutputFormatJS      OutputFormat = "js"
	OutputFormatRaw     OutputFormat = "raw"
	OutputFormatVis     OutputFormat = "vis"
	OutputFormatMermaid OutputFormat = "mermaid"
)

var outputFormats = []OutputFormat{
	OutputFormatPlain,
	OutputFormatDOT,
	OutputFormatDGML,
	OutputFormatJS,
	OutputFormatRaw,
	OutputFormatVis,
	OutputFormatMermaid,
}

var outputFormatDescriptions = map[OutputFormat]string{
	OutputFormatPlain:   "Plain text, one edge per line",
	OutputFormatDOT:     "Graphviz DOT with nested clusters",
	OutputFormatDGML:    "Directed Graph Markup Language, well supported by Visual Studio",
	OutputFormatJS:      "JavaScript data blob",
	OutputFormatRaw:     "Raw scan result as JSON",
	OutputFormatVis:     "Self-contained HTML visualization powered by vis.js",
	OutputFormatMermaid: "Mermaid.js flowchart",
}

// String returns the string representation of the format
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a one-line summary of the format.
func (f OutputFormat) Description() string {
	return outputFormatDescriptions[f]
}

// OutputFormats returns every supported format in display order.
func OutputFormats() []OutputFormat {
	return append([]OutputFormat(nil), outputFormats...)
}

// ParseOutputFormat converts a user supplied name to an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, bool) {
	for _, f := range outputFormats {
		if string(f) == strings.ToLower(strings.TrimSpace(name)) {
			return f, true
		}
	}
	return "", false
}

// SupportedFormats returns the format names as a comma separated list.
func SupportedFormats() string {
	names := make([]string, len(outputFormats))
	for i, f := range outputFormats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
