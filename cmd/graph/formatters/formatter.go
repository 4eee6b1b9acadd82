package formatters

import "github.com/LegacyCodeHQ/srcdep/depgraph"

// RenderOptions contains optional parameters for rendering dependency data.
type RenderOptions struct {
	// Label is an optional title for the graph
	Label string
	// Cycles lists closed cycles, each ending with its first node
	Cycles [][]string
}

// Formatter is the interface that all renderers implement.
type Formatter interface {
	// Format converts dependency data to its textual representation.
	Format(data *depgraph.DependencyData, opts RenderOptions) (string, error)
	// GenerateURL returns a link that opens output in an online viewer, if the
	// format has one.
	GenerateURL(output string) (string, bool)
}
