package typescript

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
	"github.com/LegacyCodeHQ/srcdep/depgraph/languages/javascript"
)

var extensions = []string{".ts", ".tsx"}

type Module struct{}

func (Module) Name() string {
	return "typescript"
}

func (Module) Description() string {
	return "TypeScript and TSX, import/export/require"
}

func (Module) Extensions() []string {
	return append([]string(nil), extensions...)
}

func (Module) Maturity() langsupport.MaturityLevel {
	return langsupport.MaturityActivelyTested
}

func (Module) ModuleSeparator() string {
	return "/"
}

func (Module) CandidateSuffixes() []string {
	return javascript.CandidateSuffixes(extensions)
}

func (Module) Parse(ctx *langsupport.ParseContext) (langsupport.ParseResult, error) {
	content, err := ctx.Content()
	if err != nil {
		return langsupport.ParseResult{}, fmt.Errorf("failed to read %s: %w", ctx.File, err)
	}

	imports, err := ParseTypeScriptImports(content, ctx.Ext == ".tsx")
	if err != nil {
		return langsupport.ParseResult{}, fmt.Errorf("failed to parse imports in %s: %w", ctx.File, err)
	}

	return langsupport.ParseResult{PathDependencies: javascript.ImportPaths(imports)}, nil
}

// ParseTypeScriptImports parses TypeScript source code and extracts imports.
// Type-only imports are reported like any other import.
func ParseTypeScriptImports(sourceCode []byte, isTSX bool) ([]javascript.Import, error) {
	var lang *sitter.Language
	if isTSX {
		lang = tsx.GetLanguage()
	} else {
		lang = typescript.GetLanguage()
	}
	return javascript.ParseImports(sourceCode, lang)
}
