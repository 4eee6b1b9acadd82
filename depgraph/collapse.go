package depgraph

// CollapseContainment splices out containment nodes that have exactly one
// child and take part in no dependency edge. The parent of such a node is
// pointed straight at its child. Each splice removes one edge, so the loop
// ends. The root ("") is never spliced.
func CollapseContainment(contains, dependencies []Edge) []Edge {
	edges := append([]Edge(nil), contains...)

	linked := make(map[string]bool, len(dependencies)*2)
	for _, d := range dependencies {
		linked[d.From] = true
		linked[d.To] = true
	}

	for {
		idx := trivialContainer(edges, linked)
		if idx < 0 {
			return edges
		}

		trivial := edges[idx]
		for i := range edges {
			if edges[i].To == trivial.From {
				edges[i].To = trivial.To
				break
			}
		}
		edges = append(edges[:idx], edges[idx+1:]...)
	}
}

// trivialContainer returns the index of the only outgoing edge of the first
// single-child, unlinked node, or -1.
func trivialContainer(edges []Edge, linked map[string]bool) int {
	children := make(map[string]int, len(edges))
	for _, e := range edges {
		children[e.From]++
	}
	for i, e := range edges {
		if e.From != "" && children[e.From] == 1 && !linked[e.From] {
			return i
		}
	}
	return -1
}
