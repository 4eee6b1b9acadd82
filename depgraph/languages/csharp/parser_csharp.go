package csharp

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tscsharp "github.com/smacker/go-tree-sitter/csharp"
)

// CompilationUnit is what a C# file declares about itself.
type CompilationUnit struct {
	// Namespaces in declaration order, nested ones fully qualified.
	Namespaces []string
	// Usings are the imported namespaces or types, aliases resolved to their target.
	Usings []string
}

var usingDirective = regexp.MustCompile(`^(?:global\s+)?using\s+(?:static\s+)?(?:[A-Za-z_][A-Za-z0-9_]*\s*=\s*)?([A-Za-z_][A-Za-z0-9_.]*)`)

var namespaceLine = regexp.MustCompile(`(?m)^\s*namespace\s+([A-Za-z_][A-Za-z0-9_.]*)`)

// ParseCompilationUnit extracts namespaces and using directives of C# source code.
func ParseCompilationUnit(sourceCode []byte) (CompilationUnit, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(tscsharp.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, sourceCode)
	if err != nil {
		return CompilationUnit{}, fmt.Errorf("failed to parse C# code: %w", err)
	}
	defer tree.Close()

	var unit CompilationUnit
	var walk func(node *sitter.Node, enclosing string)
	walk = func(node *sitter.Node, enclosing string) {
		if node == nil {
			return
		}

		switch node.Type() {
		case "using_directive":
			if m := usingDirective.FindStringSubmatch(strings.TrimSpace(node.Content(sourceCode))); m != nil {
				unit.Usings = append(unit.Usings, m[1])
			}
			return
		case "namespace_declaration", "file_scoped_namespace_declaration":
			if name := node.ChildByFieldName("name"); name != nil {
				qualified := strings.TrimSpace(name.Content(sourceCode))
				if enclosing != "" {
					qualified = enclosing + "." + qualified
				}
				unit.Namespaces = append(unit.Namespaces, qualified)
				enclosing = qualified
			}
		}

		for i := 0; i < int(node.NamedChildCount()); i++ {
			walk(node.NamedChild(i), enclosing)
		}
	}

	walk(tree.RootNode(), "")
	if len(unit.Namespaces) == 0 {
		// Older grammars have no node for file-scoped namespaces.
		for _, m := range namespaceLine.FindAllSubmatch(sourceCode, -1) {
			unit.Namespaces = append(unit.Namespaces, string(m[1]))
		}
	}
	return unit, nil
}
