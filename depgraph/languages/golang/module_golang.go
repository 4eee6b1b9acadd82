package golang

import (
	"fmt"
	"log/slog"
	"path"

	"golang.org/x/mod/modfile"

	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
)

// OptionStandardLibrary keeps standard library imports in the graph.
const OptionStandardLibrary = "stdlib"

type Module struct{}

func (Module) Name() string {
	return "go"
}

func (Module) Description() string {
	return "Go packages as import path modules, import declarations"
}

func (Module) Extensions() []string {
	return []string{".go"}
}

func (Module) Maturity() langsupport.MaturityLevel {
	return langsupport.MaturityBasicTests
}

func (Module) ModuleSeparator() string {
	return "/"
}

func (Module) CandidateSuffixes() []string {
	return nil
}

// Parse names the file after the import path of its package and reports its
// imports as module dependencies. Standard library imports are dropped unless
// the stdlib option is set.
func (Module) Parse(ctx *langsupport.ParseContext) (langsupport.ParseResult, error) {
	content, err := ctx.Content()
	if err != nil {
		return langsupport.ParseResult{}, fmt.Errorf("failed to read %s: %w", ctx.File, err)
	}

	imports, err := ParseImports(content)
	if err != nil {
		return langsupport.ParseResult{}, err
	}

	keepStdlib := ctx.BoolOption(OptionStandardLibrary)
	deps := make([]string, 0, len(imports))
	for _, imp := range imports {
		if !keepStdlib && IsStandardLibrary(imp) {
			continue
		}
		deps = append(deps, imp)
	}

	result := langsupport.ParseResult{Module: PackagePath(ctx)}
	result.AddModuleDependencies(result.Module, deps...)
	return result, nil
}

// PackagePath returns the import path of the directory of the current file,
// based on the nearest go.mod at or above it. Without one the root relative
// directory is used.
func PackagePath(ctx *langsupport.ParseContext) string {
	for dir := ctx.Dir; ; dir = path.Dir(dir) {
		content, err := ctx.ReadFile(path.Join(dir, "go.mod"))
		if err == nil {
			if modulePath := modfile.ModulePath(content); modulePath != "" {
				return joinImportPath(modulePath, relativeDir(dir, ctx.Dir))
			}
			slog.Debug("go.mod without module directive", "dir", dir)
		}
		if dir == "." || dir == "/" {
			return ctx.Dir
		}
	}
}

func relativeDir(base, dir string) string {
	if base == "." {
		return dir
	}
	if dir == base {
		return "."
	}
	return dir[len(base)+1:]
}

func joinImportPath(modulePath, rel string) string {
	if rel == "." {
		return modulePath
	}
	return modulePath + "/" + rel
}
