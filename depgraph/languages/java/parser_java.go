package java

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsjava "github.com/smacker/go-tree-sitter/java"
)

// CompilationUnit is what a Java file declares about itself.
type CompilationUnit struct {
	Package string
	Imports []string
}

// ParseCompilationUnit extracts the package and imports of Java source code.
// Wildcard imports keep their ".*" suffix; static imports keep the member name.
func ParseCompilationUnit(sourceCode []byte) (CompilationUnit, error) {
	tree, err := parseJava(sourceCode)
	if err != nil {
		return CompilationUnit{}, fmt.Errorf("failed to parse Java code: %w", err)
	}
	defer tree.Close()

	var unit CompilationUnit
	root := tree.RootNode()
	if node := findFirstNodeOfType(root, "package_declaration"); node != nil {
		if name := findFirstChildOfType(node, "scoped_identifier", "identifier"); name != nil {
			unit.Package = strings.TrimSpace(name.Content(sourceCode))
		}
	}

	for _, node := range findNodesOfType(root, "import_declaration") {
		path, isWildcard := extractImportPath(node, sourceCode)
		if path == "" {
			continue
		}
		if isWildcard && !strings.HasSuffix(path, ".*") {
			path += ".*"
		}
		unit.Imports = append(unit.Imports, path)
	}

	return unit, nil
}

func parseJava(sourceCode []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(tsjava.GetLanguage())
	return parser.ParseCtx(context.Background(), nil, sourceCode)
}

func extractImportPath(node *sitter.Node, sourceCode []byte) (string, bool) {
	if node == nil {
		return "", false
	}

	nameNode := findFirstChildOfType(node, "scoped_identifier", "identifier")
	if nameNode == nil {
		return "", false
	}

	return strings.TrimSpace(nameNode.Content(sourceCode)), hasChildOfType(node, "asterisk")
}

func hasChildOfType(node *sitter.Node, nodeType string) bool {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child != nil && child.Type() == nodeType {
			return true
		}
	}
	return false
}

func findFirstChildOfType(node *sitter.Node, types ...string) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		for _, t := range types {
			if child.Type() == t {
				return child
			}
		}
	}
	return nil
}

func findFirstNodeOfType(node *sitter.Node, nodeType string) *sitter.Node {
	if node == nil {
		return nil
	}
	if node.Type() == nodeType {
		return node
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		found := findFirstNodeOfType(node.NamedChild(i), nodeType)
		if found != nil {
			return found
		}
	}
	return nil
}

func findNodesOfType(node *sitter.Node, nodeType string) []*sitter.Node {
	if node == nil {
		return nil
	}
	nodes := []*sitter.Node{}
	if node.Type() == nodeType {
		nodes = append(nodes, node)
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		nodes = append(nodes, findNodesOfType(node.NamedChild(i), nodeType)...)
	}
	return nodes
}
