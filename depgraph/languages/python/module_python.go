package python

import (
	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
)

type Module struct{}

func (Module) Name() string {
	return "python"
}

func (Module) Description() string {
	return "Python modules, import/from/import_module statements, one line at a time"
}

func (Module) Extensions() []string {
	return []string{".py"}
}

func (Module) Maturity() langsupport.MaturityLevel {
	return langsupport.MaturityBasicTests
}

func (Module) ModuleSeparator() string {
	return "/"
}

func (Module) CandidateSuffixes() []string {
	return []string{".py", "/__init__.py"}
}

// Parse reads the whole file through ParseLine.
func (m Module) Parse(ctx *langsupport.ParseContext) (langsupport.ParseResult, error) {
	return langsupport.ParseLines(ctx, m)
}

func (Module) ParseLine(_ *langsupport.ParseContext, line string, _ int) langsupport.ParseResult {
	modules := ParseImportLine(line)
	if len(modules) == 0 {
		return langsupport.ParseResult{}
	}
	paths := make([]string, 0, len(modules))
	for _, module := range modules {
		paths = append(paths, ModuleToPath(module))
	}
	return langsupport.ParseResult{PathDependencies: paths}
}
