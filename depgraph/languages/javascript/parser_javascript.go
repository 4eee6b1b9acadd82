package javascript

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// ImportKind classifies a module specifier.
type ImportKind int

const (
	ImportInternal ImportKind = iota
	ImportExternal
	ImportNodeBuiltin
)

// Import is one module specifier found in a file.
type Import struct {
	Path string
	Kind ImportKind
	// Statement is the syntax it came from: import, export, require or dynamic.
	Statement string
}

// nodeBuiltins contains known Node.js built-in module names
var nodeBuiltins = map[string]bool{
	"assert":         true,
	"buffer":         true,
	"child_process":  true,
	"cluster":        true,
	"crypto":         true,
	"dgram":          true,
	"dns":            true,
	"events":         true,
	"fs":             true,
	"http":           true,
	"https":          true,
	"net":            true,
	"os":             true,
	"path":           true,
	"querystring":    true,
	"readline":       true,
	"stream":         true,
	"string_decoder": true,
	"timers":         true,
	"tls":            true,
	"tty":            true,
	"url":            true,
	"util":           true,
	"v8":             true,
	"vm":             true,
	"zlib":           true,
	"worker_threads": true,
	"perf_hooks":     true,
	"async_hooks":    true,
	"fs/promises":    true,
	"path/posix":     true,
	"path/win32":     true,
}

// ClassifyImport tells relative specifiers from packages and Node built-ins.
func ClassifyImport(importPath string) ImportKind {
	switch {
	case strings.HasPrefix(importPath, "node:"), nodeBuiltins[importPath]:
		return ImportNodeBuiltin
	case strings.HasPrefix(importPath, "./"), strings.HasPrefix(importPath, "../"), strings.HasPrefix(importPath, "/"):
		return ImportInternal
	default:
		return ImportExternal
	}
}

var vueScriptBlock = regexp.MustCompile(`(?s)<script[^>]*>(.*?)</script>`)

// ScriptContent returns the code of every <script> block of a Vue single
// file component, joined in order.
func ScriptContent(sourceCode []byte) []byte {
	var b strings.Builder
	for _, m := range vueScriptBlock.FindAllSubmatch(sourceCode, -1) {
		b.Write(m[1])
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// ParseJavaScriptImports parses JavaScript (including JSX) source code and
// extracts module specifiers in source order.
func ParseJavaScriptImports(sourceCode []byte) ([]Import, error) {
	return ParseImports(sourceCode, javascript.GetLanguage())
}

// ParseImports parses source code with an ECMAScript family grammar.
func ParseImports(sourceCode []byte, lang *sitter.Language) ([]Import, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(context.Background(), nil, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	defer tree.Close()

	return ExtractImports(tree.RootNode(), sourceCode), nil
}

// ExtractImports walks the tree for import and export sources, require calls
// and dynamic import() calls with a literal argument.
func ExtractImports(rootNode *sitter.Node, sourceCode []byte) []Import {
	var imports []Import
	add := func(node *sitter.Node, statement string) {
		if node == nil {
			return
		}
		if importPath := cleanImportPath(node.Content(sourceCode)); importPath != "" {
			imports = append(imports, Import{Path: importPath, Kind: ClassifyImport(importPath), Statement: statement})
		}
	}

	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}

		switch n.Type() {
		case "import_statement":
			add(findChildOfType(n, "string"), "import")
		case "export_statement":
			add(findChildOfType(n, "string"), "export")
		case "call_expression":
			if statement := callKind(n, sourceCode); statement != "" {
				if args := n.ChildByFieldName("arguments"); args != nil && args.NamedChildCount() > 0 {
					if first := args.NamedChild(0); first.Type() == "string" {
						add(first, statement)
					}
				}
			}
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}

	walk(rootNode)
	return imports
}

func callKind(call *sitter.Node, sourceCode []byte) string {
	fn := call.ChildByFieldName("function")
	if fn == nil {
		return ""
	}
	switch {
	case fn.Type() == "import":
		return "dynamic"
	case fn.Type() == "identifier" && fn.Content(sourceCode) == "require":
		return "require"
	default:
		return ""
	}
}

func findChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child != nil && child.Type() == nodeType {
			return child
		}
	}
	return nil
}

// cleanImportPath removes quotes from import path strings
func cleanImportPath(raw string) string {
	cleaned := strings.Trim(raw, "'\"`")
	return strings.TrimSpace(cleaned)
}

// ImportPaths returns the specifiers of imports in order.
func ImportPaths(imports []Import) []string {
	paths := make([]string, 0, len(imports))
	for _, imp := range imports {
		paths = append(paths, imp.Path)
	}
	return paths
}

// CandidateSuffixes returns "<ext>" for every extension followed by "/index<ext>".
func CandidateSuffixes(exts []string) []string {
	suffixes := make([]string, 0, len(exts)*2)
	for _, ext := range exts {
		suffixes = append(suffixes, ext)
	}
	for _, ext := range exts {
		suffixes = append(suffixes, "/index"+ext)
	}
	return suffixes
}
