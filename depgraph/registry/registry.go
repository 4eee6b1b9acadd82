package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
	"github.com/LegacyCodeHQ/srcdep/depgraph/languages/c"
	"github.com/LegacyCodeHQ/srcdep/depgraph/languages/cpp"
	"github.com/LegacyCodeHQ/srcdep/depgraph/languages/csharp"
	"github.com/LegacyCodeHQ/srcdep/depgraph/languages/golang"
	"github.com/LegacyCodeHQ/srcdep/depgraph/languages/java"
	"github.com/LegacyCodeHQ/srcdep/depgraph/languages/javascript"
	"github.com/LegacyCodeHQ/srcdep/depgraph/languages/npm"
	"github.com/LegacyCodeHQ/srcdep/depgraph/languages/python"
	"github.com/LegacyCodeHQ/srcdep/depgraph/languages/raw"
	"github.com/LegacyCodeHQ/srcdep/depgraph/languages/typescript"
)

// Auto selects every plugin that takes part in extension based dispatch.
const Auto = "auto"

// Order matters for auto dispatch: the first plugin whose extensions match a
// file parses it, so c claims .c and .h ahead of cpp.
var modules = []langsupport.Module{
	typescript.Module{},
	javascript.Module{},
	java.Module{},
	csharp.Module{},
	golang.Module{},
	python.Module{},
	c.Module{},
	cpp.Module{},
	npm.Module{},
	raw.Module{},
}

// explicitOnly plugins never take part in auto dispatch.
var explicitOnly = map[string]bool{
	"raw": true,
}

// LanguageSupport describes one plugin for listings.
type LanguageSupport struct {
	Name        string
	Description string
	Extensions  []string
	Maturity    langsupport.MaturityLevel
}

// Modules returns supported language modules in deterministic order.
func Modules() []langsupport.Module {
	return append([]langsupport.Module(nil), modules...)
}

// Names returns the plugin names in registry order.
func Names() []string {
	names := make([]string, len(modules))
	for i, module := range modules {
		names[i] = module.Name()
	}
	return names
}

// Lookup returns the plugin registered under name.
func Lookup(name string) (langsupport.Module, error) {
	for _, module := range modules {
		if module.Name() == name {
			return module, nil
		}
	}
	return nil, fmt.Errorf("unsupported language: %s (supported: %s, %s)", name, Auto, strings.Join(Names(), ", "))
}

// ModulesFor resolves a language selection. Auto yields every plugin except
// the explicit-only ones, any other name yields exactly that plugin.
func ModulesFor(name string) ([]langsupport.Module, error) {
	if name == "" || name == Auto {
		selected := make([]langsupport.Module, 0, len(modules))
		for _, module := range modules {
			if !explicitOnly[module.Name()] {
				selected = append(selected, module)
			}
		}
		return selected, nil
	}

	module, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return []langsupport.Module{module}, nil
}

// ModuleForExtension returns the first auto-dispatched module that handles file.
func ModuleForExtension(file string) (langsupport.Module, bool) {
	for _, module := range modules {
		if explicitOnly[module.Name()] {
			continue
		}
		if langsupport.MatchesFile(module, file) {
			return module, true
		}
	}
	return nil, false
}

// SupportedLanguages returns a copy of every plugin's listing data.
func SupportedLanguages() []LanguageSupport {
	languages := make([]LanguageSupport, len(modules))
	for i, module := range modules {
		languages[i] = LanguageSupport{
			Name:        module.Name(),
			Description: module.Description(),
			Extensions:  append([]string(nil), module.Extensions()...),
			Maturity:    module.Maturity(),
		}
	}
	return languages
}

// Extensions returns the extensions handled by modules, sorted and deduplicated.
func Extensions(modules []langsupport.Module) []string {
	seen := make(map[string]bool)
	for _, module := range modules {
		for _, ext := range module.Extensions() {
			seen[ext] = true
		}
	}
	extensions := make([]string, 0, len(seen))
	for ext := range seen {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)
	return extensions
}
