package depgraph

import (
	"fmt"
	"log/slog"
	"path"

	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
)

// DependencyInfo is the raw outcome of a scan: path and module level
// dependencies plus the partial correspondence between the two.
type DependencyInfo struct {
	PathToModule       map[string]string `json:"path2module"`
	ModuleToPath       map[string]string `json:"module2path"`
	PathDependencies   *DependencyMap    `json:"pathDependencies"`
	ModuleDependencies *DependencyMap    `json:"moduleDependencies"`
	ModuleSeparator    string            `json:"moduleSeparator"`
}

// NewDependencyInfo returns an empty info using separator for module names.
func NewDependencyInfo(separator string) *DependencyInfo {
	if separator == "" {
		separator = "/"
	}
	return &DependencyInfo{
		PathToModule:       make(map[string]string),
		ModuleToPath:       make(map[string]string),
		PathDependencies:   NewDependencyMap(),
		ModuleDependencies: NewDependencyMap(),
		ModuleSeparator:    separator,
	}
}

// ScanOptions configures BuildDependencyInfo.
type ScanOptions struct {
	// RootDir is the directory the files are relative to.
	RootDir string
	// Files are root-relative, slash separated paths in listing order.
	Files []string
	// StrictMatch requires resolved references to equal a known path exactly.
	StrictMatch bool
	// NameResolver remaps a raw reference before a second resolution attempt.
	NameResolver func(string) string
	// LanguageOptions are handed to every plugin untouched.
	LanguageOptions map[string]any
	// ContentReader defaults to reading from disk.
	ContentReader langsupport.ContentReader
	// Progress is called as files are processed.
	Progress ProgressCallback
	// ProgressStep is the reporting granularity in percent.
	ProgressStep int
}

type scanner struct {
	opts      ScanOptions
	modules   []langsupport.Module
	resolvers map[string]*PathResolver
	info      *DependencyInfo
	separator string
}

// BuildDependencyInfo scans every file with the first module whose extensions
// match it, resolves raw path references and aggregates the results. The
// module/path cross-derivation runs once after all files are scanned.
func BuildDependencyInfo(modules []langsupport.Module, opts ScanOptions) (*DependencyInfo, error) {
	if len(modules) == 0 {
		return nil, fmt.Errorf("at least one language module is required")
	}

	s := &scanner{
		opts:      opts,
		modules:   modules,
		resolvers: make(map[string]*PathResolver, len(modules)),
		info:      NewDependencyInfo("/"),
	}
	for _, m := range modules {
		s.resolvers[m.Name()] = NewPathResolver(opts.Files, m.CandidateSuffixes(), opts.StrictMatch)
	}

	marker := NewProgressMarker(len(opts.Files), opts.ProgressStep, opts.Progress)
	for _, file := range opts.Files {
		marker.Advance(1)
		if err := s.scanFile(file); err != nil {
			return nil, err
		}
	}

	if s.separator != "" {
		s.info.ModuleSeparator = s.separator
	}
	s.info.CrossDerive()
	return s.info, nil
}

func (s *scanner) moduleFor(file string) langsupport.Module {
	for _, m := range s.modules {
		if langsupport.MatchesFile(m, file) {
			return m
		}
	}
	return nil
}

func (s *scanner) scanFile(file string) error {
	module := s.moduleFor(file)
	if module == nil {
		return nil
	}

	ctx := langsupport.NewParseContext(s.opts.RootDir, s.opts.Files, file, s.opts.ContentReader, s.opts.NameResolver, s.opts.LanguageOptions)
	result, err := parseFile(module, ctx)
	if err != nil {
		slog.Debug("failed to parse file; recording no dependencies",
			"file", file,
			"language", module.Name(),
			"error", err,
		)
		result = langsupport.ParseResult{}
	}

	s.record(file, module, result)
	return nil
}

func parseFile(module langsupport.Module, ctx *langsupport.ParseContext) (langsupport.ParseResult, error) {
	if lineParser, ok := module.(langsupport.LineParser); ok {
		return langsupport.ParseLines(ctx, lineParser)
	}
	return module.Parse(ctx)
}

func (s *scanner) record(file string, module langsupport.Module, result langsupport.ParseResult) {
	resolver := s.resolvers[module.Name()]
	dir := path.Dir(file)
	if dir == "." {
		dir = ""
	}

	resolved := make([]string, 0, len(result.PathDependencies))
	for _, raw := range result.PathDependencies {
		resolved = append(resolved, s.resolveReference(resolver, raw, dir))
	}
	s.info.PathDependencies.Add(file, resolved...)

	if result.Module != "" {
		s.info.PathToModule[file] = result.Module
		if _, ok := s.info.ModuleToPath[result.Module]; !ok {
			s.info.ModuleToPath[result.Module] = file
		}
	}

	if len(result.ModuleDependencies) > 0 {
		if s.separator == "" {
			s.separator = module.ModuleSeparator()
		}
		incoming := NewDependencyMap()
		for _, md := range result.ModuleDependencies {
			incoming.Add(md.Module, md.Dependencies...)
		}
		s.info.ModuleDependencies.Extend(incoming)
	}
}

// resolveReference resolves raw directly, then through the name resolver, and
// finally tags it as external.
func (s *scanner) resolveReference(resolver *PathResolver, raw, dir string) string {
	if p, ok := resolver.Resolve(raw, dir); ok {
		return p
	}
	if s.opts.NameResolver != nil {
		if mapped := s.opts.NameResolver(raw); mapped != raw {
			if p, ok := resolver.Resolve(mapped, dir); ok {
				return p
			}
		}
	}
	return MarkExternal(raw)
}

// CrossDerive fills one side of the path/module duality from the other, but
// only for entities whose target side has no dependencies yet. It is meant to
// run once per scan; running it again changes nothing.
func (info *DependencyInfo) CrossDerive() {
	for _, module := range info.ModuleDependencies.Keys() {
		deps, _ := info.ModuleDependencies.Get(module)
		if len(deps) == 0 {
			continue
		}
		file, ok := info.ModuleToPath[module]
		if !ok {
			continue
		}
		if existing, ok := info.PathDependencies.Get(file); ok && len(existing) > 0 {
			continue
		}
		converted := make([]string, 0, len(deps))
		for _, dep := range deps {
			if depPath, ok := info.ModuleToPath[dep]; ok {
				converted = append(converted, depPath)
			} else {
				converted = append(converted, MarkUnresolved(dep))
			}
		}
		info.PathDependencies.Add(file, converted...)
	}

	for _, file := range info.PathDependencies.Keys() {
		deps, _ := info.PathDependencies.Get(file)
		if len(deps) == 0 {
			continue
		}
		module, ok := info.PathToModule[file]
		if !ok {
			continue
		}
		if existing, ok := info.ModuleDependencies.Get(module); ok && len(existing) > 0 {
			continue
		}
		converted := make([]string, 0, len(deps))
		for _, dep := range deps {
			if depModule, ok := info.PathToModule[dep]; ok {
				converted = append(converted, depModule)
			} else {
				converted = append(converted, dep)
			}
		}
		info.ModuleDependencies.Add(module, converted...)
	}
}

// SelectDependencies picks the view to render: module dependencies when any
// exist and forcePath is false, otherwise path dependencies. The returned
// separator matches the chosen view.
func (info *DependencyInfo) SelectDependencies(forcePath bool) (*DependencyMap, string) {
	if info.ModuleDependencies.Len() > 0 && !forcePath {
		return info.ModuleDependencies, info.ModuleSeparator
	}
	return info.PathDependencies, "/"
}
