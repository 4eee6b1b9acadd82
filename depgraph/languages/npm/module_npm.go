package npm

import (
	"fmt"
	"log/slog"

	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
)

// Language options understood by the npm plugin.
const (
	OptionLockFile        = "lockFile"
	OptionDevDependencies = "devDependencies"
)

type Module struct{}

func (Module) Name() string {
	return "npm"
}

func (Module) Description() string {
	return "npm packages from package.json; with the lockFile option, yarn.lock or package-lock.json first; devDependencies option for dev dependencies"
}

func (Module) Extensions() []string {
	return []string{"package.json"}
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

func (Module) Parse(ctx *langsupport.ParseContext) (langsupport.ParseResult, error) {
	content, err := ctx.Content()
	if err != nil {
		return langsupport.ParseResult{}, fmt.Errorf("failed to read %s: %w", ctx.File, err)
	}

	name, direct, err := ParseManifest(content, ctx.BoolOption(OptionDevDependencies))
	if err != nil {
		return langsupport.ParseResult{}, fmt.Errorf("failed to parse %s: %w", ctx.File, err)
	}

	result := langsupport.ParseResult{Module: name}
	if ctx.BoolOption(OptionLockFile) {
		if locked := readLockFile(ctx); locked != nil && locked.Len() > 0 {
			for _, pkg := range locked.Names {
				result.AddModuleDependencies(pkg, locked.Deps[pkg]...)
			}
			return result, nil
		}
	}

	slog.Debug("parsing package.json directly", "file", ctx.File)
	if name == "" {
		return langsupport.ParseResult{}, nil
	}
	result.AddModuleDependencies(name, direct...)
	return result, nil
}

// readLockFile tries yarn.lock, then package-lock.json. Missing or malformed
// lock files yield nil.
func readLockFile(ctx *langsupport.ParseContext) *PackageDependencies {
	if content, err := ctx.ReadSibling("yarn.lock"); err == nil {
		if deps := ParseYarnLock(content); deps.Len() > 0 {
			return deps
		}
	} else {
		slog.Debug("no yarn lock file", "file", ctx.File, "error", err)
	}

	content, err := ctx.ReadSibling("package-lock.json")
	if err != nil {
		slog.Debug("no npm lock file", "file", ctx.File, "error", err)
		return nil
	}
	deps, err := ParsePackageLock(content)
	if err != nil {
		slog.Debug("failed to parse npm lock file", "file", ctx.File, "error", err)
		return nil
	}
	return deps
}
