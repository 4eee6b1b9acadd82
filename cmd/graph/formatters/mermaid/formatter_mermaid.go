package mermaid

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/srcdep/depgraph"
)

// Formatter formats dependency data as Mermaid.js flowcharts.
type Formatter struct{}

// Format converts the dependency data to Mermaid.js flowchart format.
func (f *Formatter) Format(data *depgraph.DependencyData, opts formatters.RenderOptions) (string, error) {
	var sb strings.Builder

	// Add title if label provided
	if opts.Label != "" {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %s\n", opts.Label))
		sb.WriteString("---\n")
	}

	sb.WriteString("flowchart LR\n")

	nodes := data.Nodes()
	sort.Strings(nodes)
	nodeNames := formatters.BuildNodeNames(nodes, data.Separator)

	// Mermaid node IDs can't have dots or special characters.
	nodeIDs := make(map[string]string, len(nodes))
	for i, node := range nodes {
		nodeIDs[node] = fmt.Sprintf("n%d", i)
	}

	cycleNodes := make(map[string]bool)
	cycleEdges := make(map[depgraph.Edge]bool)
	for i, cycle := range opts.Cycles {
		if len(cycle) == 0 {
			continue
		}
		parts := make([]string, 0, len(cycle))
		for j, node := range cycle {
			parts = append(parts, displayName(nodeNames, node))
			cycleNodes[node] = true
			if j > 0 {
				cycleEdges[depgraph.Edge{From: cycle[j-1], To: node}] = true
			}
		}
		sb.WriteString(fmt.Sprintf("%%%% C%d: %s\n", i+1, strings.Join(parts, " -> ")))
	}

	for _, node := range nodes {
		label := strings.ReplaceAll(nodeNames[node], "\"", "#quot;")
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", nodeIDs[node], label))
	}

	var cycleEdgeIndices []int
	if len(data.FlatDependencies) > 0 {
		sb.WriteString("\n")
		for i, e := range data.FlatDependencies {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", nodeIDs[e.From], nodeIDs[e.To]))
			if cycleEdges[e] {
				cycleEdgeIndices = append(cycleEdgeIndices, i)
			}
		}
	}

	var externalNodes []string
	for _, node := range nodes {
		if depgraph.IsExternal(node) {
			externalNodes = append(externalNodes, nodeIDs[node])
		}
	}

	var stylesSB strings.Builder
	if len(externalNodes) > 0 {
		stylesSB.WriteString("    classDef external fill:#EEEEEE,stroke:#999999,color:#555555,stroke-dasharray: 3 3\n")
		stylesSB.WriteString(fmt.Sprintf("    class %s external\n", strings.Join(externalNodes, ",")))
	}
	for _, node := range nodes {
		if cycleNodes[node] {
			stylesSB.WriteString(fmt.Sprintf("    style %s stroke:#d62728,stroke-width:3px\n", nodeIDs[node]))
		}
	}
	for _, idx := range cycleEdgeIndices {
		stylesSB.WriteString(fmt.Sprintf("    linkStyle %d stroke:#d62728,stroke-width:3px,stroke-dasharray: 5 5\n", idx))
	}
	if stylesSB.Len() > 0 {
		sb.WriteString("\n")
		sb.WriteString(stylesSB.String())
	}

	return strings.TrimSuffix(sb.String(), "\n"), nil
}

func displayName(names map[string]string, node string) string {
	if name, ok := names[node]; ok {
		return name
	}
	return node
}

// GenerateURL creates a mermaid.live URL with the diagram embedded.
func (f *Formatter) GenerateURL(output string) (string, bool) {
	payload := map[string]interface{}{
		"code": output,
		"mermaid": map[string]interface{}{
			"theme": "default",
		},
		"autoSync":      true,
		"updateDiagram": true,
	}

	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		// Fallback: just return the code URL-encoded
		return fmt.Sprintf("https://mermaid.live/edit#%s", url.PathEscape(output)), true
	}

	encoded := base64.URLEncoding.EncodeToString(jsonBytes)
	return fmt.Sprintf("https://mermaid.live/edit#base64:%s", encoded), true
}
