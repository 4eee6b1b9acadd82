package dot

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/srcdep/depgraph"
)

var clusterTheme = []string{"#ffd0cc", "#d0ffcc", "#d0ccff"}

var nonIdentifier = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Formatter formats dependency data as Graphviz DOT. Interior nodes of the
// containment tree become nested clusters.
type Formatter struct{}

// Format converts the dependency data to Graphviz DOT format.
func (f *Formatter) Format(data *depgraph.DependencyData, opts formatters.RenderOptions) (string, error) {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("  overlap=false\n")

	if opts.Label != "" {
		sb.WriteString(fmt.Sprintf("  label=%q\n", opts.Label))
		sb.WriteString("  labelloc=t\n")
	}

	writeClusters(&sb, data.Contains, 0)

	for _, e := range data.FlatDependencies {
		sb.WriteString(fmt.Sprintf("  %q -> %q\n", e.From, e.To))
	}

	sb.WriteString("}")
	return sb.String(), nil
}

func writeClusters(sb *strings.Builder, h *depgraph.Hierarchy, depth int) {
	indent := strings.Repeat("  ", depth+1)
	for _, n := range h.Nodes() {
		if n.IsLeaf() {
			sb.WriteString(fmt.Sprintf("%s%q\n", indent, n.Name))
			continue
		}
		sb.WriteString(fmt.Sprintf("%ssubgraph cluster_%s {\n", indent, nonIdentifier.ReplaceAllString(n.Name, "_")))
		sb.WriteString(fmt.Sprintf("%s  style=\"rounded\"; bgcolor=\"%s\"\n", indent, clusterTheme[depth%len(clusterTheme)]))
		writeClusters(sb, n.Children, depth+1)
		sb.WriteString(indent + "}\n")
	}
}

// GenerateURL creates a GraphvizOnline URL with the DOT graph embedded.
func (f *Formatter) GenerateURL(output string) (string, bool) {
	encoded := url.PathEscape(output)
	return fmt.Sprintf("https://dreampuf.github.io/GraphvizOnline/?engine=dot#%s", encoded), true
}
