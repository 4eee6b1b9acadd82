package depgraph

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DependencyMap maps an entity name to the ordered entities it depends on.
// Keys keep their insertion order so rendered output is stable across runs.
type DependencyMap struct {
	keys []string
	deps map[string][]string
}

// NewDependencyMap returns an empty map.
func NewDependencyMap() *DependencyMap {
	return &DependencyMap{deps: make(map[string][]string)}
}

// DependencyMapOf builds a map from literal entries. Keys are inserted in the
// order given by keys, which must cover every entry of adjacency.
func DependencyMapOf(keys []string, adjacency map[string][]string) *DependencyMap {
	m := NewDependencyMap()
	for _, k := range keys {
		m.Add(k, adjacency[k]...)
	}
	return m
}

// Add appends deps to the entry for key, creating the entry if needed.
// Calling Add with no deps still registers key.
func (m *DependencyMap) Add(key string, deps ...string) {
	existing, ok := m.deps[key]
	if !ok {
		m.keys = append(m.keys, key)
		existing = []string{}
	}
	m.deps[key] = append(existing, deps...)
}

// Set replaces the entry for key.
func (m *DependencyMap) Set(key string, deps []string) {
	if _, ok := m.deps[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.deps[key] = append([]string{}, deps...)
}

// Delete removes key and its entry.
func (m *DependencyMap) Delete(key string) {
	if _, ok := m.deps[key]; !ok {
		return
	}
	delete(m.deps, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Has reports whether key has an entry.
func (m *DependencyMap) Has(key string) bool {
	_, ok := m.deps[key]
	return ok
}

// Get returns the dependencies of key.
func (m *DependencyMap) Get(key string) ([]string, bool) {
	deps, ok := m.deps[key]
	return deps, ok
}

// Keys returns a copy of the keys in insertion order.
func (m *DependencyMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of keys.
func (m *DependencyMap) Len() int {
	return len(m.keys)
}

// Clone returns a deep copy.
func (m *DependencyMap) Clone() *DependencyMap {
	c := NewDependencyMap()
	for _, k := range m.keys {
		c.Set(k, m.deps[k])
	}
	return c
}

// Extend appends every entry of incoming to m in place.
func (m *DependencyMap) Extend(incoming *DependencyMap) {
	if incoming == nil {
		return
	}
	for _, k := range incoming.keys {
		m.Add(k, incoming.deps[k]...)
	}
}

// MergeDependencies returns a new map holding, for every key of either input,
// the entries of existing followed by the entries of incoming. Nothing is
// deduplicated here.
func MergeDependencies(existing, incoming *DependencyMap) *DependencyMap {
	result := NewDependencyMap()
	result.Extend(existing)
	result.Extend(incoming)
	return result
}

// MarshalJSON encodes the map as a JSON object preserving key order.
func (m *DependencyMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(m.deps[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of string arrays, keeping key order.
func (m *DependencyMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("dependency map must be a JSON object")
	}

	*m = DependencyMap{deps: make(map[string][]string)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected dependency map key %v", tok)
		}
		var deps []string
		if err := dec.Decode(&deps); err != nil {
			return fmt.Errorf("failed to decode dependencies of %q: %w", key, err)
		}
		m.Add(key, deps...)
	}
	_, err = dec.Token()
	return err
}
