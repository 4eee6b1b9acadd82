package plain

import (
	"strings"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/srcdep/depgraph"
)

// Formatter lists dependency edges, one per line.
type Formatter struct{}

// Format writes every flat dependency as "from -> to".
func (f *Formatter) Format(data *depgraph.DependencyData, _ formatters.RenderOptions) (string, error) {
	lines := make([]string, 0, len(data.FlatDependencies))
	for _, e := range data.FlatDependencies {
		lines = append(lines, e.From+" -> "+e.To)
	}
	return strings.Join(lines, "\n"), nil
}

// GenerateURL is not supported for plain text.
func (f *Formatter) GenerateURL(string) (string, bool) {
	return "", false
}
