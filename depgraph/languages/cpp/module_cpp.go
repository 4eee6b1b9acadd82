package cpp

import (
	"fmt"

	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
	clang "github.com/LegacyCodeHQ/srcdep/depgraph/languages/c"
)

type Module struct{}

func (Module) Name() string {
	return "cpp"
}

func (Module) Description() string {
	return "C++ and Objective-C sources and headers, #include directives"
}

func (Module) Extensions() []string {
	return []string{".c", ".cc", ".cpp", ".cxx", ".h", ".hh", ".hpp", ".m"}
}

func (Module) Maturity() langsupport.MaturityLevel {
	return langsupport.MaturityBasicTests
}

func (Module) ModuleSeparator() string {
	return "/"
}

func (Module) CandidateSuffixes() []string {
	return []string{".h", ".hpp", ".hh"}
}

func (Module) Parse(ctx *langsupport.ParseContext) (langsupport.ParseResult, error) {
	content, err := ctx.Content()
	if err != nil {
		return langsupport.ParseResult{}, fmt.Errorf("failed to read %s: %w", ctx.File, err)
	}

	includes, err := ParseCppIncludes(content)
	if err != nil {
		return langsupport.ParseResult{}, fmt.Errorf("failed to parse includes in %s: %w", ctx.File, err)
	}

	return langsupport.ParseResult{PathDependencies: clang.IncludePaths(includes)}, nil
}
