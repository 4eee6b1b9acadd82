package depgraph

import (
	"bytes"
	"encoding/json"
	"strings"
)

// HierarchyNode is one entry of a containment tree. A nil Children marks a leaf.
type HierarchyNode struct {
	Name     string
	Children *Hierarchy
}

// IsLeaf reports whether the node has no nested entries.
func (n *HierarchyNode) IsLeaf() bool {
	return n.Children == nil
}

// Hierarchy is an ordered set of sibling nodes keyed by their full prefix.
type Hierarchy struct {
	order []string
	nodes map[string]*HierarchyNode
}

// NewHierarchy returns an empty tree.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{nodes: make(map[string]*HierarchyNode)}
}

// BuildHierarchy groups entities by their separator-delimited prefixes. Every
// prefix becomes an interior node; the full name becomes a leaf unless a
// deeper entity already made it interior.
func BuildHierarchy(entities []string, separator string) *Hierarchy {
	h := NewHierarchy()
	for _, entity := range entities {
		h.Insert(entity, separator)
	}
	return h
}

// Insert adds entity to the tree. Inserting an existing entity is a no-op and a
// leaf found on the way down is upgraded to an interior node.
func (h *Hierarchy) Insert(entity, separator string) {
	if entity == "" {
		return
	}
	if separator == "" {
		separator = "/"
	}

	segments := strings.Split(entity, separator)
	level := h
	prefix := ""
	for i, seg := range segments {
		if i == 0 {
			prefix = seg
		} else {
			prefix = prefix + separator + seg
		}
		if seg == "" && i < len(segments)-1 {
			continue
		}

		last := i == len(segments)-1
		node, ok := level.nodes[prefix]
		if !ok {
			node = &HierarchyNode{Name: prefix}
			level.nodes[prefix] = node
			level.order = append(level.order, prefix)
		}
		if last {
			return
		}
		if node.Children == nil {
			node.Children = NewHierarchy()
		}
		level = node.Children
	}
}

// Len returns the number of direct children.
func (h *Hierarchy) Len() int {
	if h == nil {
		return 0
	}
	return len(h.order)
}

// Nodes returns the direct children in insertion order.
func (h *Hierarchy) Nodes() []*HierarchyNode {
	if h == nil {
		return nil
	}
	nodes := make([]*HierarchyNode, 0, len(h.order))
	for _, name := range h.order {
		nodes = append(nodes, h.nodes[name])
	}
	return nodes
}

// Walk visits every parent/child pair depth first. Top level nodes have no
// parent and are not reported themselves.
func (h *Hierarchy) Walk(visit func(parent, child string)) {
	for _, n := range h.Nodes() {
		n.walk(visit)
	}
}

func (n *HierarchyNode) walk(visit func(parent, child string)) {
	for _, child := range n.Children.Nodes() {
		visit(n.Name, child.Name)
		child.walk(visit)
	}
}

// FlattenHierarchy lists the containment edges of h. Top level nodes hang off
// the empty root name.
func FlattenHierarchy(h *Hierarchy) []Edge {
	var edges []Edge
	for _, n := range h.Nodes() {
		edges = append(edges, Edge{From: "", To: n.Name})
	}
	h.Walk(func(parent, child string) {
		edges = append(edges, Edge{From: parent, To: child})
	})
	return edges
}

// MarshalJSON encodes the tree as nested objects with null leaves.
func (h *Hierarchy) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, n := range h.Nodes() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(n.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if n.IsLeaf() {
			buf.WriteString("null")
			continue
		}
		children, err := n.Children.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(children)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
