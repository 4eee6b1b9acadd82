package golang

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsgolang "github.com/smacker/go-tree-sitter/golang"
)

const importQueryPattern = `
(import_spec
  path: [(interpreted_string_literal) (raw_string_literal)] @import.path)
`

// ParseImports extracts the import paths of Go source code in declaration
// order.
func ParseImports(sourceCode []byte) ([]string, error) {
	lang := tsgolang.GetLanguage()

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(context.Background(), nil, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go code: %w", err)
	}
	defer tree.Close()

	query, err := sitter.NewQuery([]byte(importQueryPattern), lang)
	if err != nil {
		return nil, fmt.Errorf("failed to create query: %w", err)
	}
	defer query.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(query, tree.RootNode())

	var imports []string
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}
		match = cursor.FilterPredicates(match, sourceCode)
		for _, capture := range match.Captures {
			if importPath := cleanImportPath(capture.Node.Content(sourceCode)); importPath != "" {
				imports = append(imports, importPath)
			}
		}
	}
	return imports, nil
}

// IsStandardLibrary reports whether importPath belongs to the standard
// library: its first element carries no dot.
func IsStandardLibrary(importPath string) bool {
	first, _, _ := strings.Cut(importPath, "/")
	return !strings.Contains(first, ".")
}

func cleanImportPath(raw string) string {
	return strings.TrimSpace(strings.Trim(raw, "`\""))
}
