package depgraph

// DependencyData is what renderers consume.
type DependencyData struct {
	Dependencies     *DependencyMap `json:"dependencies"`
	FlatDependencies []Edge         `json:"flatDependencies"`
	Contains         *Hierarchy     `json:"contains"`
	FlatContains     []Edge         `json:"flatContains"`

	// Separator splits entity names of the selected view.
	Separator string `json:"-"`
	// Info is the scan result the data was derived from.
	Info *DependencyInfo `json:"-"`
}

// PipelineOptions configures BuildDependencyData.
type PipelineOptions struct {
	Normalize NormalizeOptions
	// ForcePathView renders path dependencies even when module dependencies exist.
	ForcePathView bool
}

// BuildDependencyData selects the module or path view of info, normalizes it
// and derives the containment hierarchy of the remaining entities.
func BuildDependencyData(info *DependencyInfo, opts PipelineOptions) (*DependencyData, error) {
	deps, separator := info.SelectDependencies(opts.ForcePathView)

	normalize := opts.Normalize
	normalize.Separator = separator
	filtered, edges, err := Normalize(deps, normalize)
	if err != nil {
		return nil, err
	}

	entities := make([]string, 0, len(edges)*2)
	for _, e := range edges {
		entities = append(entities, e.From, e.To)
	}
	contains := BuildHierarchy(entities, separator)

	return &DependencyData{
		Dependencies:     filtered,
		FlatDependencies: edges,
		Contains:         contains,
		FlatContains:     CollapseContainment(FlattenHierarchy(contains), edges),
		Separator:        separator,
		Info:             info,
	}, nil
}

// Nodes lists every endpoint of the dependency edges in first-seen order.
func (d *DependencyData) Nodes() []string {
	seen := make(map[string]bool)
	var nodes []string
	for _, e := range d.FlatDependencies {
		for _, n := range []string{e.From, e.To} {
			if !seen[n] {
				seen[n] = true
				nodes = append(nodes, n)
			}
		}
	}
	return nodes
}
