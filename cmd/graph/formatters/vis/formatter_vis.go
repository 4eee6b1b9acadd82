package vis

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/srcdep/depgraph"
)

//go:embed vis_template.html
var template string

const (
	nodesPlaceholder = "__NODES"
	edgesPlaceholder = "__EDGES"
	externalColor    = "#eeeeee"
)

type visNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Shape string `json:"shape"`
	Color string `json:"color,omitempty"`
}

type visEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Arrows string `json:"arrows"`
}

// Formatter renders a self-contained HTML page that draws the graph with
// vis.js.
type Formatter struct{}

// Format fills the page template with the node and edge arrays.
func (f *Formatter) Format(data *depgraph.DependencyData, _ formatters.RenderOptions) (string, error) {
	names := data.Nodes()

	var colors map[string]string
	if data.Separator == "/" {
		colors = formatters.ExtensionColors(names)
	}

	nodes := make([]visNode, 0, len(names))
	for _, name := range names {
		node := visNode{ID: name, Label: name, Shape: "box"}
		if depgraph.IsExternal(name) {
			node.Color = externalColor
		} else if len(colors) > 1 {
			node.Color = colors[path.Ext(name)]
		}
		nodes = append(nodes, node)
	}

	edges := make([]visEdge, 0, len(data.FlatDependencies))
	for _, e := range data.FlatDependencies {
		edges = append(edges, visEdge{From: e.From, To: e.To, Arrows: "to"})
	}

	nodesJSON, err := json.Marshal(nodes)
	if err != nil {
		return "", fmt.Errorf("failed to encode nodes: %w", err)
	}
	edgesJSON, err := json.Marshal(edges)
	if err != nil {
		return "", fmt.Errorf("failed to encode edges: %w", err)
	}

	html := strings.Replace(template, nodesPlaceholder, string(nodesJSON), 1)
	html = strings.Replace(html, edgesPlaceholder, string(edgesJSON), 1)
	return html, nil
}

// GenerateURL is not supported for HTML output.
func (f *Formatter) GenerateURL(string) (string, bool) {
	return "", false
}
