package c

import (
	"fmt"

	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
)

type Module struct{}

func (Module) Name() string {
	return "c"
}

func (Module) Description() string {
	return "C sources and headers, #include directives"
}

func (Module) Extensions() []string {
	return []string{".c", ".h"}
}

func (Module) Maturity() langsupport.MaturityLevel {
	return langsupport.MaturityBasicTests
}

func (Module) ModuleSeparator() string {
	return "/"
}

func (Module) CandidateSuffixes() []string {
	return []string{".h"}
}

func (Module) Parse(ctx *langsupport.ParseContext) (langsupport.ParseResult, error) {
	content, err := ctx.Content()
	if err != nil {
		return langsupport.ParseResult{}, fmt.Errorf("failed to read %s: %w", ctx.File, err)
	}

	includes, err := ParseCIncludes(content)
	if err != nil {
		return langsupport.ParseResult{}, fmt.Errorf("failed to parse includes in %s: %w", ctx.File, err)
	}

	return langsupport.ParseResult{PathDependencies: IncludePaths(includes)}, nil
}

// IncludePaths returns the raw include paths, local and system alike.
func IncludePaths(includes []Include) []string {
	paths := make([]string, 0, len(includes))
	for _, inc := range includes {
		paths = append(paths, inc.Path)
	}
	return paths
}
