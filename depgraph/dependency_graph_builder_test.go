package depgraph_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LegacyCodeHQ/srcdep/depgraph"
	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubModule reads "dep:<ref>", "module:<name>" and "uses:<name>" lines.
type stubModule struct {
	name      string
	exts      []string
	separator string
	suffixes  []string
}

func (s stubModule) Name() string                        { return s.name }
func (s stubModule) Description() string                 { return "stub" }
func (s stubModule) Extensions() []string                { return s.exts }
func (s stubModule) Maturity() langsupport.MaturityLevel { return langsupport.MaturityUntested }
func (s stubModule) ModuleSeparator() string             { return s.separator }
func (s stubModule) CandidateSuffixes() []string         { return s.suffixes }

func (s stubModule) Parse(ctx *langsupport.ParseContext) (langsupport.ParseResult, error) {
	lines, err := ctx.Lines()
	if err != nil {
		return langsupport.ParseResult{}, err
	}
	var result langsupport.ParseResult
	var uses []string
	for _, line := range lines {
		switch {
		case line == "broken":
			return langsupport.ParseResult{}, errors.New("broken file")
		case strings.HasPrefix(line, "dep:"):
			result.PathDependencies = append(result.PathDependencies, strings.TrimPrefix(line, "dep:"))
		case strings.HasPrefix(line, "module:"):
			result.Module = strings.TrimPrefix(line, "module:")
		case strings.HasPrefix(line, "uses:"):
			uses = append(uses, strings.TrimPrefix(line, "uses:"))
		}
	}
	if result.Module != "" && len(uses) > 0 {
		result.AddModuleDependencies(result.Module, uses...)
	}
	return result, nil
}

// lineStub reports one path dependency per "dep:" line.
type lineStub struct {
	stubModule
}

func (lineStub) ParseLine(_ *langsupport.ParseContext, line string, _ int) langsupport.ParseResult {
	if !strings.HasPrefix(line, "dep:") {
		return langsupport.ParseResult{}
	}
	return langsupport.ParseResult{PathDependencies: []string{strings.TrimPrefix(line, "dep:")}}
}

func memoryReader(files map[string]string) langsupport.ContentReader {
	return func(filePath string) ([]byte, error) {
		content, ok := files[filepath.ToSlash(filePath)]
		if !ok {
			return nil, fmt.Errorf("no such file %s", filePath)
		}
		return []byte(content), nil
	}
}

func scanOptions(files map[string]string, order ...string) depgraph.ScanOptions {
	return depgraph.ScanOptions{
		Files:         order,
		ContentReader: memoryReader(files),
	}
}

var tsStub = stubModule{name: "ts", exts: []string{".ts"}, separator: "/", suffixes: []string{".ts", "/index.ts"}}

func TestBuildDependencyInfo_ResolvesPathDependencies(t *testing.T) {
	files := map[string]string{
		"src/main.ts":        "dep:./util\ndep:./views\ndep:react",
		"src/util.ts":        "",
		"src/views/index.ts": "dep:../util",
		"README.md":          "dep:./src/main",
	}
	opts := scanOptions(files, "src/main.ts", "src/util.ts", "src/views/index.ts", "README.md")

	info, err := depgraph.BuildDependencyInfo([]langsupport.Module{tsStub}, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/main.ts", "src/util.ts", "src/views/index.ts"}, info.PathDependencies.Keys())
	deps, _ := info.PathDependencies.Get("src/main.ts")
	assert.Equal(t, []string{"src/util.ts", "src/views/index.ts", "*external*/react"}, deps)
	deps, _ = info.PathDependencies.Get("src/views/index.ts")
	assert.Equal(t, []string{"src/util.ts"}, deps)
	assert.Equal(t, 0, info.ModuleDependencies.Len())
}

func TestBuildDependencyInfo_NameResolverFallback(t *testing.T) {
	files := map[string]string{
		"app/main.ts":    "dep:@lib/strings",
		"lib/strings.ts": "",
	}
	opts := scanOptions(files, "app/main.ts", "lib/strings.ts")
	opts.StrictMatch = true
	mappings, err := depgraph.ParsePathMappings([]string{"@lib/=/lib/"})
	require.NoError(t, err)
	opts.NameResolver = depgraph.NameResolver(mappings)

	info, err := depgraph.BuildDependencyInfo([]langsupport.Module{tsStub}, opts)
	require.NoError(t, err)

	deps, _ := info.PathDependencies.Get("app/main.ts")
	assert.Equal(t, []string{"lib/strings.ts"}, deps)
}

func TestBuildDependencyInfo_ParseFailureIsIsolated(t *testing.T) {
	files := map[string]string{
		"a.ts": "broken",
		"b.ts": "dep:./a",
	}

	info, err := depgraph.BuildDependencyInfo([]langsupport.Module{tsStub}, scanOptions(files, "a.ts", "b.ts"))
	require.NoError(t, err)

	deps, ok := info.PathDependencies.Get("a.ts")
	assert.True(t, ok)
	assert.Empty(t, deps)
	deps, _ = info.PathDependencies.Get("b.ts")
	assert.Equal(t, []string{"a.ts"}, deps)
}

func TestBuildDependencyInfo_UnreadableFileIsIsolated(t *testing.T) {
	files := map[string]string{"b.ts": ""}

	info, err := depgraph.BuildDependencyInfo([]langsupport.Module{tsStub}, scanOptions(files, "missing.ts", "b.ts"))
	require.NoError(t, err)

	assert.Equal(t, []string{"missing.ts", "b.ts"}, info.PathDependencies.Keys())
}

func TestBuildDependencyInfo_LineParser(t *testing.T) {
	pyStub := lineStub{stubModule{name: "py", exts: []string{".py"}, separator: "/", suffixes: []string{".py"}}}
	files := map[string]string{
		"pkg/a.py": "dep:b\r\nnoise\ndep:os",
		"pkg/b.py": "",
	}

	info, err := depgraph.BuildDependencyInfo([]langsupport.Module{pyStub}, scanOptions(files, "pkg/a.py", "pkg/b.py"))
	require.NoError(t, err)

	deps, _ := info.PathDependencies.Get("pkg/a.py")
	assert.Equal(t, []string{"pkg/b.py", "*external*/os"}, deps)
}

func TestBuildDependencyInfo_DispatchesByExtension(t *testing.T) {
	pyStub := stubModule{name: "py", exts: []string{".py"}, separator: "/", suffixes: []string{".py"}}
	files := map[string]string{
		"a.ts": "dep:./b",
		"b.ts": "",
		"c.py": "dep:b",
	}

	info, err := depgraph.BuildDependencyInfo([]langsupport.Module{tsStub, pyStub}, scanOptions(files, "a.ts", "b.ts", "c.py"))
	require.NoError(t, err)

	deps, _ := info.PathDependencies.Get("c.py")
	assert.Equal(t, []string{"*external*/b"}, deps, "python suffixes do not reach .ts files")
	deps, _ = info.PathDependencies.Get("a.ts")
	assert.Equal(t, []string{"b.ts"}, deps)
}

func TestBuildDependencyInfo_DerivesPathsFromModules(t *testing.T) {
	javaStub := stubModule{name: "java", exts: []string{".java"}, separator: "."}
	files := map[string]string{
		"com/acme/App.java":  "module:com.acme.App\nuses:com.acme.Util\nuses:java.util.List",
		"com/acme/Util.java": "module:com.acme.Util",
	}

	info, err := depgraph.BuildDependencyInfo([]langsupport.Module{javaStub}, scanOptions(files, "com/acme/App.java", "com/acme/Util.java"))
	require.NoError(t, err)

	assert.Equal(t, ".", info.ModuleSeparator)
	assert.Equal(t, "com/acme/App.java", info.ModuleToPath["com.acme.App"])
	assert.Equal(t, "com.acme.Util", info.PathToModule["com/acme/Util.java"])
	deps, _ := info.PathDependencies.Get("com/acme/App.java")
	assert.Equal(t, []string{"com/acme/Util.java", "*unresolved*/java.util.List"}, deps)
}

func TestBuildDependencyInfo_RequiresModules(t *testing.T) {
	_, err := depgraph.BuildDependencyInfo(nil, depgraph.ScanOptions{})

	assert.Error(t, err)
}

func TestBuildDependencyInfo_ReportsProgress(t *testing.T) {
	files := map[string]string{"a.ts": "", "b.ts": "", "c.ts": "", "d.ts": ""}
	opts := scanOptions(files, "a.ts", "b.ts", "c.ts", "d.ts")
	opts.ProgressStep = 50
	var reported [][2]int
	opts.Progress = func(current, total int) {
		reported = append(reported, [2]int{current, total})
	}

	_, err := depgraph.BuildDependencyInfo([]langsupport.Module{tsStub}, opts)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{2, 4}, {4, 4}}, reported)
}

func TestCrossDerive_ModulesFromPaths(t *testing.T) {
	info := depgraph.NewDependencyInfo(".")
	info.PathDependencies.Add("a/A.cs", "a/B.cs", "*external*/x")
	info.PathDependencies.Add("a/B.cs")
	info.PathToModule["a/A.cs"] = "A"
	info.PathToModule["a/B.cs"] = "B"
	info.ModuleToPath["A"] = "a/A.cs"
	info.ModuleToPath["B"] = "a/B.cs"

	info.CrossDerive()

	deps, ok := info.ModuleDependencies.Get("A")
	require.True(t, ok)
	assert.Equal(t, []string{"B", "*external*/x"}, deps)
	assert.False(t, info.ModuleDependencies.Has("B"))
}

func TestCrossDerive_IsIdempotent(t *testing.T) {
	info := depgraph.NewDependencyInfo(".")
	info.ModuleDependencies.Add("A", "B", "C")
	info.ModuleToPath["A"] = "A.java"
	info.ModuleToPath["B"] = "B.java"
	info.PathToModule["A.java"] = "A"
	info.PathToModule["B.java"] = "B"
	info.PathDependencies.Add("A.java")
	info.PathDependencies.Add("B.java")

	info.CrossDerive()
	pathDeps, _ := info.PathDependencies.Get("A.java")
	moduleDeps, _ := info.ModuleDependencies.Get("A")
	pathSnapshot := append([]string(nil), pathDeps...)
	moduleSnapshot := append([]string(nil), moduleDeps...)

	info.CrossDerive()

	pathDeps, _ = info.PathDependencies.Get("A.java")
	moduleDeps, _ = info.ModuleDependencies.Get("A")
	assert.Equal(t, []string{"B.java", "*unresolved*/C"}, pathSnapshot)
	assert.Equal(t, pathSnapshot, pathDeps)
	assert.Equal(t, moduleSnapshot, moduleDeps)
	assert.Equal(t, 1, info.ModuleDependencies.Len())
}

func TestSelectDependencies(t *testing.T) {
	info := depgraph.NewDependencyInfo(".")
	info.PathDependencies.Add("a.ts")

	deps, sep := info.SelectDependencies(false)
	assert.Same(t, info.PathDependencies, deps)
	assert.Equal(t, "/", sep)

	info.ModuleDependencies.Add("com.A", "com.B")
	deps, sep = info.SelectDependencies(false)
	assert.Same(t, info.ModuleDependencies, deps)
	assert.Equal(t, ".", sep)

	deps, _ = info.SelectDependencies(true)
	assert.Same(t, info.PathDependencies, deps)
}
