package csharp

import (
	"fmt"
	"path"
	"strings"

	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
)

type Module struct{}

func (Module) Name() string {
	return "csharp"
}

func (Module) Description() string {
	return "C# namespaces as modules, using directives"
}

func (Module) Extensions() []string {
	return []string{".cs"}
}

func (Module) Maturity() langsupport.MaturityLevel {
	return langsupport.MaturityUntested
}

func (Module) ModuleSeparator() string {
	return "."
}

func (Module) CandidateSuffixes() []string {
	return nil
}

// Parse uses the first namespace of the file as its module. Files without a
// namespace are named after their stem.
func (Module) Parse(ctx *langsupport.ParseContext) (langsupport.ParseResult, error) {
	content, err := ctx.Content()
	if err != nil {
		return langsupport.ParseResult{}, fmt.Errorf("failed to read %s: %w", ctx.File, err)
	}

	unit, err := ParseCompilationUnit(content)
	if err != nil {
		return langsupport.ParseResult{}, err
	}

	module := strings.TrimSuffix(path.Base(ctx.File), path.Ext(ctx.File))
	if len(unit.Namespaces) > 0 {
		module = unit.Namespaces[0]
	}

	result := langsupport.ParseResult{Module: module}
	result.AddModuleDependencies(module, unit.Usings...)
	return result, nil
}
