package python

import (
	"context"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

var parsers = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		parser.SetLanguage(python.GetLanguage())
		return parser
	},
}

// ParseImportLine returns the dotted module names imported by one line of
// Python source: "import a.b, c as d", "from .x import y" and
// importlib.import_module("z"). A line that opens a parenthesized import list
// still yields its module.
func ParseImportLine(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	source := []byte(strings.TrimLeft(line, " \t"))

	parser := parsers.Get().(*sitter.Parser)
	defer parsers.Put(parser)

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil
	}
	defer tree.Close()

	return extractImportsFromTree(tree.RootNode(), source)
}

// extractImportsFromTree walks the AST and extracts imported module names.
func extractImportsFromTree(rootNode *sitter.Node, sourceCode []byte) []string {
	var modules []string

	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}

		switch n.Type() {
		case "import_statement":
			modules = append(modules, extractImportStatementModules(n, sourceCode)...)
			return
		case "import_from_statement":
			if module := extractImportFromModule(n, sourceCode); module != "" {
				modules = append(modules, module)
			}
			return
		case "ERROR":
			// An unterminated "from x import (" line does not form a statement.
			if first := n.Child(0); first != nil && first.Type() == "from" {
				if module := extractImportFromModule(n, sourceCode); module != "" {
					modules = append(modules, module)
				}
				return
			}
		case "call":
			if module := extractImportModuleCall(n, sourceCode); module != "" {
				modules = append(modules, module)
			}
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}

	walk(rootNode)
	return modules
}

func extractImportStatementModules(node *sitter.Node, sourceCode []byte) []string {
	var modules []string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if module := extractModuleName(node.NamedChild(i), sourceCode); module != "" {
			modules = append(modules, module)
		}
	}
	return modules
}

// extractImportFromModule returns the module named between "from" and "import".
func extractImportFromModule(node *sitter.Node, sourceCode []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "import":
			return ""
		case "relative_import", "dotted_name":
			return strings.TrimSpace(child.Content(sourceCode))
		}
	}
	return ""
}

func extractModuleName(node *sitter.Node, sourceCode []byte) string {
	if node == nil {
		return ""
	}
	switch node.Type() {
	case "dotted_name", "identifier", "relative_import":
		return strings.TrimSpace(node.Content(sourceCode))
	case "aliased_import":
		if name := node.ChildByFieldName("name"); name != nil {
			return strings.TrimSpace(name.Content(sourceCode))
		}
	}
	return ""
}

// extractImportModuleCall handles import_module("x") and
// importlib.import_module("x") with a string literal argument.
func extractImportModuleCall(node *sitter.Node, sourceCode []byte) string {
	function := node.ChildByFieldName("function")
	if function == nil {
		return ""
	}
	name := function
	if function.Type() == "attribute" {
		name = function.ChildByFieldName("attribute")
	}
	if name == nil || name.Content(sourceCode) != "import_module" {
		return ""
	}

	args := node.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() == 0 {
		return ""
	}
	arg := args.NamedChild(0)
	if arg.Type() != "string" {
		return ""
	}
	return strings.Trim(arg.Content(sourceCode), `"'`)
}

// ModuleToPath turns a dotted module name into a path reference. Leading dots
// of relative imports become "./" and "../" segments:
//
//	a.b    -> a/b
//	.x     -> ./x
//	..x.y  -> ../x/y
//	.      -> .
func ModuleToPath(module string) string {
	trimmed := strings.TrimLeft(module, ".")
	dots := len(module) - len(trimmed)
	rest := strings.ReplaceAll(trimmed, ".", "/")

	if dots == 0 {
		return rest
	}

	prefix := "."
	if dots > 1 {
		prefix = strings.TrimSuffix(strings.Repeat("../", dots-1), "/")
	}
	if rest == "" {
		return prefix
	}
	return prefix + "/" + rest
}
