package java

import (
	"fmt"
	"path"
	"strings"

	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
)

type Module struct{}

func (Module) Name() string {
	return "java"
}

func (Module) Description() string {
	return "Java classes as package-qualified modules, import declarations"
}

func (Module) Extensions() []string {
	return []string{".java"}
}

func (Module) Maturity() langsupport.MaturityLevel {
	return langsupport.MaturityBasicTests
}

func (Module) ModuleSeparator() string {
	return "."
}

func (Module) CandidateSuffixes() []string {
	return nil
}

// Parse names the file after its package and file stem, e.g.
// com.acme.Widget for com/acme/Widget.java, and reports imports as module
// dependencies.
func (Module) Parse(ctx *langsupport.ParseContext) (langsupport.ParseResult, error) {
	content, err := ctx.Content()
	if err != nil {
		return langsupport.ParseResult{}, fmt.Errorf("failed to read %s: %w", ctx.File, err)
	}

	unit, err := ParseCompilationUnit(content)
	if err != nil {
		return langsupport.ParseResult{}, err
	}

	result := langsupport.ParseResult{Module: ClassName(unit.Package, ctx.File)}
	result.AddModuleDependencies(result.Module, unit.Imports...)
	return result, nil
}

// ClassName joins a package and the stem of file.
func ClassName(pkg, file string) string {
	stem := strings.TrimSuffix(path.Base(file), path.Ext(file))
	if pkg == "" {
		return stem
	}
	return pkg + "." + stem
}
