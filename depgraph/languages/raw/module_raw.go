package raw

import (
	"encoding/json"
	"fmt"

	"github.com/LegacyCodeHQ/srcdep/depgraph"
	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
)

// Module reads dependency maps written as JSON objects of string arrays, for
// example the output of another tool.
type Module struct{}

func (Module) Name() string {
	return "raw"
}

func (Module) Description() string {
	return "raw dependency data, JSON objects mapping a name to its dependencies"
}

func (Module) Extensions() []string {
	return []string{".json"}
}

func (Module) Maturity() langsupport.MaturityLevel {
	return langsupport.MaturityStable
}

func (Module) ModuleSeparator() string {
	return "/"
}

func (Module) CandidateSuffixes() []string {
	return nil
}

func (Module) Parse(ctx *langsupport.ParseContext) (langsupport.ParseResult, error) {
	content, err := ctx.Content()
	if err != nil {
		return langsupport.ParseResult{}, fmt.Errorf("failed to read %s: %w", ctx.File, err)
	}

	deps := depgraph.NewDependencyMap()
	if err := json.Unmarshal(content, deps); err != nil {
		return langsupport.ParseResult{}, fmt.Errorf("failed to parse %s: %w", ctx.File, err)
	}

	var result langsupport.ParseResult
	for _, name := range deps.Keys() {
		targets, _ := deps.Get(name)
		result.AddModuleDependencies(name, targets...)
	}
	return result, nil
}
