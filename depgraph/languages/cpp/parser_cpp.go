package cpp

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"

	clang "github.com/LegacyCodeHQ/srcdep/depgraph/languages/c"
)

// ParseCppIncludes parses C++ (or Objective-C style) source code and extracts includes.
func ParseCppIncludes(sourceCode []byte) ([]clang.Include, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(cpp.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse C++ code: %w", err)
	}
	defer tree.Close()

	return clang.ExtractIncludes(tree.RootNode(), sourceCode), nil
}
