package depgraph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dominikbraun/graph"
)

// DepthSpec truncates entity names to a number of hierarchy segments, with a
// separate depth for external entities. Zero means no truncation.
type DepthSpec struct {
	Internal int
	External int
}

// ParseDepth parses "internal[,external]". An empty string disables collapsing.
func ParseDepth(s string) (DepthSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DepthSpec{}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return DepthSpec{}, fmt.Errorf("invalid depth %q, expected internal[,external]", s)
	}
	values := make([]int, 2)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return DepthSpec{}, fmt.Errorf("invalid depth %q, expected non-negative integers", s)
		}
		values[i] = n
	}
	return DepthSpec{Internal: values[0], External: values[1]}, nil
}

// IsZero reports whether no truncation is configured.
func (d DepthSpec) IsZero() bool {
	return d.Internal == 0 && d.External == 0
}

// String formats the spec the way ParseDepth reads it.
func (d DepthSpec) String() string {
	return fmt.Sprintf("%d,%d", d.Internal, d.External)
}

// NormalizeOptions toggles the stages of Normalize.
type NormalizeOptions struct {
	ExcludeExternal bool
	ResultFilter    TextFilter
	RootFilter      TextFilter
	Prefix          string
	Depth           DepthSpec
	Separator       string
}

// Normalize runs the filter pipeline in order: external handling, text
// filtering, root-set restriction, flattening, prefix stripping and depth
// collapsing. It returns the filtered map together with the final edges.
func Normalize(deps *DependencyMap, opts NormalizeOptions) (*DependencyMap, []Edge, error) {
	m := HandleExternal(deps, opts.ExcludeExternal)
	m = FilterDependencies(m, opts.ResultFilter)
	if !opts.RootFilter.IsEmpty() {
		restricted, err := RestrictToRoots(m, opts.RootFilter)
		if err != nil {
			return nil, nil, err
		}
		m = restricted
	}

	edges := StripPrefix(FlattenDependencies(m), opts.Prefix)

	if !opts.Depth.IsZero() {
		internal := make(map[string]bool, m.Len())
		for _, k := range m.Keys() {
			internal[trimPrefix(k, opts.Prefix)] = true
		}
		edges = CollapseDepth(edges, opts.Depth, opts.Separator, func(name string) bool {
			return internal[name]
		})
	}
	return m, edges, nil
}

// HandleExternal drops targets that are not keys when exclude is set and
// marks them external otherwise.
func HandleExternal(deps *DependencyMap, exclude bool) *DependencyMap {
	result := NewDependencyMap()
	for _, k := range deps.Keys() {
		targets, _ := deps.Get(k)
		kept := make([]string, 0, len(targets))
		for _, t := range targets {
			switch {
			case deps.Has(t):
				kept = append(kept, t)
			case exclude:
			default:
				kept = append(kept, MarkExternal(t))
			}
		}
		result.Add(k, kept...)
	}
	return result
}

// FilterDependencies drops keys failing the filter and, for the rest, targets
// failing it.
func FilterDependencies(deps *DependencyMap, filter TextFilter) *DependencyMap {
	if filter.IsEmpty() {
		return deps.Clone()
	}
	result := NewDependencyMap()
	for _, k := range deps.Keys() {
		if !filter.Match(k) {
			continue
		}
		targets, _ := deps.Get(k)
		kept := make([]string, 0, len(targets))
		for _, t := range targets {
			if filter.Match(t) {
				kept = append(kept, t)
			}
		}
		result.Add(k, kept...)
	}
	return result
}

// RestrictToRoots keeps only entities reachable from the keys matching roots.
func RestrictToRoots(deps *DependencyMap, roots TextFilter) (*DependencyMap, error) {
	g := graph.New(graph.StringHash, graph.Directed())
	for _, k := range deps.Keys() {
		if err := addVertex(g, k); err != nil {
			return nil, err
		}
		targets, _ := deps.Get(k)
		for _, t := range targets {
			if err := addVertex(g, t); err != nil {
				return nil, err
			}
			if k == t {
				continue
			}
			if err := g.AddEdge(k, t); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("failed to add edge %s -> %s: %w", k, t, err)
			}
		}
	}

	reachable := make(map[string]bool)
	for _, k := range deps.Keys() {
		if !roots.Match(k) || reachable[k] {
			continue
		}
		err := graph.BFS(g, k, func(v string) bool {
			reachable[v] = true
			return false
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk from %s: %w", k, err)
		}
	}

	result := NewDependencyMap()
	for _, k := range deps.Keys() {
		if !reachable[k] {
			continue
		}
		targets, _ := deps.Get(k)
		result.Add(k, targets...)
	}
	return result, nil
}

func addVertex(g graph.Graph[string, string], v string) error {
	if err := g.AddVertex(v); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return fmt.Errorf("failed to add vertex %s: %w", v, err)
	}
	return nil
}

// FlattenDependencies lists the edges of deps without self-edges or duplicates.
func FlattenDependencies(deps *DependencyMap) []Edge {
	var edges []Edge
	for _, k := range deps.Keys() {
		targets, _ := deps.Get(k)
		for _, t := range targets {
			if k != t {
				edges = append(edges, Edge{From: k, To: t})
			}
		}
	}
	return DedupEdges(edges)
}

// StripPrefix trims prefix from both ends of every edge.
func StripPrefix(edges []Edge, prefix string) []Edge {
	if prefix == "" {
		return edges
	}
	result := make([]Edge, 0, len(edges))
	for _, e := range edges {
		result = append(result, Edge{From: trimPrefix(e.From, prefix), To: trimPrefix(e.To, prefix)})
	}
	return result
}

func trimPrefix(s, prefix string) string {
	if prefix == "" {
		return s
	}
	return strings.TrimPrefix(s, prefix)
}

// CollapseDepth truncates both endpoints of every edge, then drops empty and
// self edges and duplicates.
func CollapseDepth(edges []Edge, depth DepthSpec, separator string, isInternal func(string) bool) []Edge {
	if separator == "" {
		separator = "/"
	}
	truncate := func(name string) string {
		d := depth.External
		if isInternal != nil && isInternal(name) {
			d = depth.Internal
		}
		return TruncateName(name, d, separator)
	}

	result := make([]Edge, 0, len(edges))
	for _, e := range edges {
		from, to := truncate(e.From), truncate(e.To)
		if from == "" || to == "" || from == to {
			continue
		}
		result = append(result, Edge{From: from, To: to})
	}
	return DedupEdges(result)
}

// TruncateName keeps the first depth segments of name. Zero keeps everything.
func TruncateName(name string, depth int, separator string) string {
	if depth <= 0 {
		return name
	}
	segments := strings.Split(name, separator)
	if len(segments) <= depth {
		return name
	}
	return strings.Join(segments[:depth], separator)
}
