package depgraph

import (
	"errors"
	"sort"

	"github.com/dominikbraun/graph"
)

// FindCycles reports cycles by repeatedly pruning dead-end edges and walking
// forward from the first remaining edge until an edge repeats. Each cycle
// lists its nodes with the first node repeated at the end.
//
// The walk is greedy: edges shared by several cycles are consumed by the
// first cycle found, so not every elementary cycle is reported.
func FindCycles(edges []Edge) [][]string {
	remaining := append([]Edge(nil), edges...)
	var cycles [][]string

	for {
		remaining = pruneDeadEnds(remaining)
		if len(remaining) == 0 {
			return cycles
		}

		visited := make(map[int]int)
		var walk []int
		current := 0
		for {
			if pos, ok := visited[current]; ok {
				cycle := make([]string, 0, len(walk)-pos+1)
				for _, idx := range walk[pos:] {
					cycle = append(cycle, remaining[idx].From)
				}
				cycle = append(cycle, remaining[walk[pos]].From)
				cycles = append(cycles, cycle)
				break
			}
			visited[current] = len(walk)
			walk = append(walk, current)
			current = nextEdge(remaining, remaining[current].To)
		}

		kept := remaining[:0:0]
		for i, e := range remaining {
			if _, ok := visited[i]; !ok {
				kept = append(kept, e)
			}
		}
		remaining = kept
	}
}

// pruneDeadEnds drops edges whose target has no outgoing edge until nothing
// changes.
func pruneDeadEnds(edges []Edge) []Edge {
	for {
		sources := make(map[string]bool, len(edges))
		for _, e := range edges {
			sources[e.From] = true
		}
		kept := make([]Edge, 0, len(edges))
		for _, e := range edges {
			if sources[e.To] {
				kept = append(kept, e)
			}
		}
		if len(kept) == len(edges) {
			return kept
		}
		edges = kept
	}
}

func nextEdge(edges []Edge, from string) int {
	for i, e := range edges {
		if e.From == from {
			return i
		}
	}
	// pruneDeadEnds guarantees a continuation.
	return -1
}

// FindCycleGroups reports every strongly connected component that contains a
// cycle, including self-loops. Members are sorted and groups are ordered by
// their first member.
func FindCycleGroups(edges []Edge) ([][]string, error) {
	g := graph.New(graph.StringHash, graph.Directed())
	selfLoops := make(map[string]bool)
	for _, e := range edges {
		for _, v := range []string{e.From, e.To} {
			if err := g.AddVertex(v); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
				return nil, err
			}
		}
		if e.From == e.To {
			selfLoops[e.From] = true
			continue
		}
		if err := g.AddEdge(e.From, e.To); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return nil, err
		}
	}

	components, err := graph.StronglyConnectedComponents(g)
	if err != nil {
		return nil, err
	}

	var groups [][]string
	for _, component := range components {
		if len(component) < 2 && !selfLoops[component[0]] {
			continue
		}
		group := append([]string(nil), component...)
		sort.Strings(group)
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })
	return groups, nil
}
