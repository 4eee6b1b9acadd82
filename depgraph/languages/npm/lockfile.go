package npm

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

// PackageDependencies maps a package (or package@range) to what it depends on.
type PackageDependencies struct {
	Names []string
	Deps  map[string][]string
}

func newPackageDependencies() *PackageDependencies {
	return &PackageDependencies{Deps: make(map[string][]string)}
}

func (p *PackageDependencies) set(name string, deps []string) {
	if _, ok := p.Deps[name]; !ok {
		p.Names = append(p.Names, name)
	}
	p.Deps[name] = deps
}

// Len returns the number of packages.
func (p *PackageDependencies) Len() int {
	return len(p.Names)
}

type packageManifest struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// ParseManifest reads the package name and its direct dependencies, or its
// devDependencies when dev is set. Dependency names are sorted.
func ParseManifest(content []byte, dev bool) (string, []string, error) {
	var manifest packageManifest
	if err := json.Unmarshal(content, &manifest); err != nil {
		return "", nil, err
	}
	deps := manifest.Dependencies
	if dev {
		deps = manifest.DevDependencies
	}
	return manifest.Name, sortedKeys(deps), nil
}

type packageLock struct {
	Name     string `json:"name"`
	Packages map[string]struct {
		Name         string            `json:"name"`
		Dependencies map[string]string `json:"dependencies"`
	} `json:"packages"`
}

// ParsePackageLock reads the "packages" section of a package-lock.json. The
// root entry is named after the project; other entries drop their
// node_modules/ location prefix.
func ParsePackageLock(content []byte) (*PackageDependencies, error) {
	var lock packageLock
	if err := json.Unmarshal(content, &lock); err != nil {
		return nil, err
	}

	result := newPackageDependencies()
	for _, location := range sortedKeys(lock.Packages) {
		pkg := lock.Packages[location]
		name := packageNameFromLocation(location)
		if name == "" {
			name = pkg.Name
		}
		if name == "" {
			name = lock.Name
		}
		result.set(name, sortedKeys(pkg.Dependencies))
	}
	return result, nil
}

func packageNameFromLocation(location string) string {
	const marker = "node_modules/"
	if i := strings.LastIndex(location, marker); i >= 0 {
		return location[i+len(marker):]
	}
	return location
}

var blankLine = regexp.MustCompile(`\r?\n\s*\r?\n`)

// ParseYarnLock reads a yarn v1 lock file. Every entry is keyed by each of
// its "name@range" specifiers; dependencies are written "name@range" too.
func ParseYarnLock(content []byte) *PackageDependencies {
	result := newPackageDependencies()
	for _, section := range blankLine.Split(string(content), -1) {
		var lines []string
		for _, line := range strings.Split(section, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 || strings.HasPrefix(lines[0], "#") {
			continue
		}

		header := strings.TrimSuffix(lines[0], ":")
		var deps []string
		inDependencies := false
		for _, line := range lines[1:] {
			if strings.HasSuffix(line, ":") {
				inDependencies = line == "dependencies:"
				continue
			}
			if !inDependencies {
				continue
			}
			name, version, ok := strings.Cut(line, " ")
			if !ok {
				deps = append(deps, unquote(name))
				continue
			}
			deps = append(deps, unquote(name)+"@"+unquote(strings.TrimSpace(version)))
		}

		for _, spec := range strings.Split(header, ",") {
			result.set(unquote(strings.TrimSpace(spec)), deps)
		}
	}
	return result
}

func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
