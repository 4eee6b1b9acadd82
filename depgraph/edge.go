package depgraph

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExternalMarker prefixes entities that could not be resolved to anything inside the scanned tree.
const ExternalMarker = "*external*/"

// UnresolvedMarker prefixes module dependencies that cross-derivation could
// not map to a scanned file. They count as external everywhere.
const UnresolvedMarker = "*unresolved*/"

// IsExternal reports whether the entity carries the external or the unresolved marker.
func IsExternal(entity string) bool {
	return strings.HasPrefix(entity, ExternalMarker) || strings.HasPrefix(entity, UnresolvedMarker)
}

// MarkExternal tags a raw reference as external. Already tagged names are returned unchanged.
func MarkExternal(raw string) string {
	if IsExternal(raw) {
		return raw
	}
	return ExternalMarker + raw
}

// MarkUnresolved tags a module with no known file. Already tagged names are returned unchanged.
func MarkUnresolved(module string) string {
	if IsExternal(module) {
		return module
	}
	return UnresolvedMarker + module
}

// StripMarker removes the external or unresolved marker from name.
func StripMarker(name string) string {
	if rest, ok := strings.CutPrefix(name, ExternalMarker); ok {
		return rest
	}
	return strings.TrimPrefix(name, UnresolvedMarker)
}

// Edge is a directed pair used both for dependency and containment edges.
type Edge struct {
	From string
	To   string
}

// MarshalJSON encodes the edge as a two-element array.
func (e Edge) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.From, e.To})
}

// UnmarshalJSON decodes a two-element array.
func (e *Edge) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("edge must have exactly 2 elements, got %d", len(pair))
	}
	e.From, e.To = pair[0], pair[1]
	return nil
}

// DedupEdges removes exact duplicates, keeping first occurrences.
func DedupEdges(edges []Edge) []Edge {
	seen := make(map[Edge]bool, len(edges))
	result := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if !seen[e] {
			seen[e] = true
			result = append(result, e)
		}
	}
	return result
}
