package dgml

import (
	"encoding/xml"
	"fmt"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/srcdep/depgraph"
)

// Namespace is the DGML XML namespace.
const Namespace = "http://schemas.microsoft.com/vs/2009/dgml"

// DirectedGraph is the document root.
type DirectedGraph struct {
	XMLName xml.Name `xml:"DirectedGraph"`
	Xmlns   string   `xml:"xmlns,attr"`
	Nodes   []Node   `xml:"Nodes>Node"`
	Links   []Link   `xml:"Links>Link"`
}

type Node struct {
	ID    string `xml:"Id,attr"`
	Label string `xml:"Label,attr"`
	Group string `xml:"Group,attr,omitempty"`
}

type Link struct {
	Source   string `xml:"Source,attr"`
	Target   string `xml:"Target,attr"`
	Category string `xml:"Category,attr,omitempty"`
}

// Formatter formats dependency data as Directed Graph Markup Language.
// Containers are collapsed groups linked to their members.
type Formatter struct{}

// Format converts the dependency data to a DGML document.
func (f *Formatter) Format(data *depgraph.DependencyData, _ formatters.RenderOptions) (string, error) {
	doc := DirectedGraph{Xmlns: Namespace}
	listed := make(map[string]bool)

	for _, e := range data.FlatContains {
		if e.From == "" {
			continue
		}
		doc.Links = append(doc.Links, Link{Source: e.From, Target: e.To, Category: "Contains"})
		if !listed[e.From] {
			listed[e.From] = true
			doc.Nodes = append(doc.Nodes, Node{ID: e.From, Label: e.From, Group: "Collapsed"})
		}
	}

	for _, e := range data.FlatDependencies {
		doc.Links = append(doc.Links, Link{Source: e.From, Target: e.To})
	}
	for _, n := range data.Nodes() {
		if !listed[n] {
			listed[n] = true
			doc.Nodes = append(doc.Nodes, Node{ID: n, Label: n})
		}
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode dgml: %w", err)
	}
	return xml.Header + string(out), nil
}

// GenerateURL is not supported for DGML.
func (f *Formatter) GenerateURL(string) (string, bool) {
	return "", false
}
