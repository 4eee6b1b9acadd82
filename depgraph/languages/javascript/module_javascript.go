package javascript

import (
	"fmt"

	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
)

var extensions = []string{".js", ".jsx", ".cjs", ".mjs", ".vue"}

type Module struct{}

func (Module) Name() string {
	return "javascript"
}

func (Module) Description() string {
	return "JavaScript and Vue single file components, import/export/require"
}

func (Module) Extensions() []string {
	return append([]string(nil), extensions...)
}

func (Module) Maturity() langsupport.MaturityLevel {
	return langsupport.MaturityBasicTests
}

func (Module) ModuleSeparator() string {
	return "/"
}

func (Module) CandidateSuffixes() []string {
	return CandidateSuffixes(extensions)
}

func (Module) Parse(ctx *langsupport.ParseContext) (langsupport.ParseResult, error) {
	content, err := ctx.Content()
	if err != nil {
		return langsupport.ParseResult{}, fmt.Errorf("failed to read %s: %w", ctx.File, err)
	}
	if ctx.Ext == ".vue" {
		content = ScriptContent(content)
	}

	imports, err := ParseJavaScriptImports(content)
	if err != nil {
		return langsupport.ParseResult{}, fmt.Errorf("failed to parse imports in %s: %w", ctx.File, err)
	}

	return langsupport.ParseResult{PathDependencies: ImportPaths(imports)}, nil
}
