package jsdata

import (
	"encoding/json"
	"fmt"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/srcdep/depgraph"
)

const indent = "    "

// JSFormatter emits the dependency data as a JavaScript constant so that a
// page can include it with a script tag.
type JSFormatter struct{}

// Format renders `const data = {...};`.
func (f *JSFormatter) Format(data *depgraph.DependencyData, _ formatters.RenderOptions) (string, error) {
	out, err := json.MarshalIndent(data, "", indent)
	if err != nil {
		return "", fmt.Errorf("failed to encode dependency data: %w", err)
	}
	return "const data = " + string(out) + ";", nil
}

// GenerateURL is not supported for JavaScript output.
func (f *JSFormatter) GenerateURL(string) (string, bool) {
	return "", false
}

// RawFormatter emits the scan result the data was derived from, in the same
// shape the cache file uses.
type RawFormatter struct{}

// Format renders the underlying DependencyInfo as JSON.
func (f *RawFormatter) Format(data *depgraph.DependencyData, _ formatters.RenderOptions) (string, error) {
	if data.Info == nil {
		return "", fmt.Errorf("dependency data carries no scan result")
	}
	out, err := json.MarshalIndent(data.Info, "", indent)
	if err != nil {
		return "", fmt.Errorf("failed to encode scan result: %w", err)
	}
	return string(out), nil
}

// GenerateURL is not supported for raw output.
func (f *RawFormatter) GenerateURL(string) (string, bool) {
	return "", false
}
