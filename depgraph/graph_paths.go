package depgraph

// FindPathEdges returns the edges lying on any directed path between two of
// targets, in either direction, in input order. Targets that are not an
// endpoint of some edge are ignored.
func FindPathEdges(edges []Edge, targets []string) []Edge {
	forward, reverse := buildAdjacencyLists(edges)

	var valid []string
	seen := make(map[string]bool)
	for _, t := range targets {
		if _, ok := forward[t]; ok && !seen[t] {
			seen[t] = true
			valid = append(valid, t)
		}
	}
	if len(valid) < 2 {
		return nil
	}

	onPath := make(map[string]bool)
	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			for node := range findDirectedPathNodes(forward, reverse, valid[i], valid[j]) {
				onPath[node] = true
			}
			for node := range findDirectedPathNodes(forward, reverse, valid[j], valid[i]) {
				onPath[node] = true
			}
		}
	}

	var result []Edge
	for _, e := range edges {
		if onPath[e.From] && onPath[e.To] {
			result = append(result, e)
		}
	}
	return result
}

// Subgraph derives the dependency data made of keep alone, rebuilding the
// containment hierarchy for the remaining entities.
func (d *DependencyData) Subgraph(keep []Edge) *DependencyData {
	deps := NewDependencyMap()
	entities := make([]string, 0, len(keep)*2)
	for _, e := range keep {
		deps.Add(e.From, e.To)
		entities = append(entities, e.From, e.To)
	}
	contains := BuildHierarchy(entities, d.Separator)

	return &DependencyData{
		Dependencies:     deps,
		FlatDependencies: keep,
		Contains:         contains,
		FlatContains:     CollapseContainment(FlattenHierarchy(contains), keep),
		Separator:        d.Separator,
		Info:             d.Info,
	}
}

// buildAdjacencyLists creates forward and reverse adjacency lists.
// Forward: A→B means forward[A] contains B
// Reverse: A→B means reverse[B] contains A
func buildAdjacencyLists(edges []Edge) (forward, reverse map[string][]string) {
	forward = make(map[string][]string)
	reverse = make(map[string][]string)

	for _, e := range edges {
		forward[e.From] = append(forward[e.From], e.To)
		reverse[e.To] = append(reverse[e.To], e.From)
		if _, ok := forward[e.To]; !ok {
			forward[e.To] = nil
		}
		if _, ok := reverse[e.From]; !ok {
			reverse[e.From] = nil
		}
	}
	return forward, reverse
}

// findDirectedPathNodes finds all nodes on any directed path from source to target:
// nodes reachable from source that can also reach target.
func findDirectedPathNodes(forward, reverse map[string][]string, source, target string) map[string]bool {
	result := make(map[string]bool)

	reachableFromSource := bfsReachable(forward, source)
	if !reachableFromSource[target] {
		return result
	}
	canReachTarget := bfsReachable(reverse, target)

	for node := range reachableFromSource {
		if canReachTarget[node] {
			result[node] = true
		}
	}
	return result
}

// bfsReachable returns all nodes reachable from source.
func bfsReachable(adjacency map[string][]string, source string) map[string]bool {
	reachable := map[string]bool{source: true}

	queue := []string{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, neighbor := range adjacency[current] {
			if !reachable[neighbor] {
				reachable[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}
	return reachable
}
