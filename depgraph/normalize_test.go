package depgraph_test

import (
	"testing"

	"github.com/LegacyCodeHQ/srcdep/depgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFilter(t *testing.T, filters ...string) depgraph.TextFilter {
	t.Helper()
	f, err := depgraph.ParseTextFilter(filters)
	require.NoError(t, err)
	return f
}

func TestParseTextFilter(t *testing.T) {
	f := mustFilter(t, "-test", "+^src/", "lib")

	assert.Len(t, f.Include, 2)
	assert.Len(t, f.Exclude, 1)
	assert.True(t, f.Match("src/a.ts"))
	assert.True(t, f.Match("vendor/lib.ts"))
	assert.False(t, f.Match("src/a.test.ts"))
	assert.False(t, f.Match("docs/a.ts"))
}

func TestParseTextFilter_InvalidPattern(t *testing.T) {
	_, err := depgraph.ParseTextFilter([]string{"-("})

	assert.Error(t, err)
}

func TestTextFilter_EmptyAcceptsAll(t *testing.T) {
	var f depgraph.TextFilter

	assert.True(t, f.IsEmpty())
	assert.True(t, f.Match("anything"))
}

func TestNameResolver_FirstPrefixWins(t *testing.T) {
	mappings, err := depgraph.ParsePathMappings([]string{"@app/=src/", "@=lib/"})
	require.NoError(t, err)
	resolve := depgraph.NameResolver(mappings)

	assert.Equal(t, "src/util", resolve("@app/util"))
	assert.Equal(t, "lib/core", resolve("@core"))
	assert.Equal(t, "react", resolve("react"))
}

func TestParsePathMappings_Invalid(t *testing.T) {
	_, err := depgraph.ParsePathMappings([]string{"no-separator"})

	assert.Error(t, err)
}

func TestHandleExternal(t *testing.T) {
	deps := depgraph.DependencyMapOf([]string{"a", "b"}, map[string][]string{
		"a": {"b", "react"},
		"b": {"*external*/lodash"},
	})

	marked := depgraph.HandleExternal(deps, false)
	got, _ := marked.Get("a")
	assert.Equal(t, []string{"b", "*external*/react"}, got)
	got, _ = marked.Get("b")
	assert.Equal(t, []string{"*external*/lodash"}, got)

	dropped := depgraph.HandleExternal(deps, true)
	got, _ = dropped.Get("a")
	assert.Equal(t, []string{"b"}, got)
	got, _ = dropped.Get("b")
	assert.Empty(t, got)
}

func TestFilterDependencies_DropsKeysThenTargets(t *testing.T) {
	deps := depgraph.DependencyMapOf([]string{"src/a", "test/a", "src/b"}, map[string][]string{
		"src/a":  {"src/b", "test/a"},
		"test/a": {"src/a"},
		"src/b":  {},
	})

	filtered := depgraph.FilterDependencies(deps, mustFilter(t, "-^test/"))

	assert.Equal(t, []string{"src/a", "src/b"}, filtered.Keys())
	got, _ := filtered.Get("src/a")
	assert.Equal(t, []string{"src/b"}, got)
}

func TestRestrictToRoots_KeepsReachableClosure(t *testing.T) {
	deps := depgraph.DependencyMapOf([]string{"main", "svc", "db", "tool", "orphan"}, map[string][]string{
		"main":   {"svc"},
		"svc":    {"db"},
		"db":     {},
		"tool":   {"db"},
		"orphan": {},
	})

	restricted, err := depgraph.RestrictToRoots(deps, mustFilter(t, "^main$"))
	require.NoError(t, err)

	assert.Equal(t, []string{"main", "svc", "db"}, restricted.Keys())
}

func TestFlattenDependencies_SkipsSelfEdgesAndDuplicates(t *testing.T) {
	deps := depgraph.DependencyMapOf([]string{"a", "b"}, map[string][]string{
		"a": {"a", "b", "b"},
		"b": {"a"},
	})

	assert.Equal(t, edges("a", "b", "b", "a"), depgraph.FlattenDependencies(deps))
}

func TestStripPrefix(t *testing.T) {
	got := depgraph.StripPrefix(edges("src/a", "src/b", "lib/c", "src/d"), "src/")

	assert.Equal(t, edges("a", "b", "lib/c", "d"), got)
}

func TestParseDepth(t *testing.T) {
	d, err := depgraph.ParseDepth("2,1")
	require.NoError(t, err)
	assert.Equal(t, depgraph.DepthSpec{Internal: 2, External: 1}, d)

	d, err = depgraph.ParseDepth("3")
	require.NoError(t, err)
	assert.Equal(t, depgraph.DepthSpec{Internal: 3}, d)
	assert.Equal(t, "3,0", d.String())

	d, err = depgraph.ParseDepth("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = depgraph.ParseDepth("x")
	assert.Error(t, err)
	_, err = depgraph.ParseDepth("1,2,3")
	assert.Error(t, err)
}

func TestCollapseDepth_TruncatesAndDedups(t *testing.T) {
	input := edges(
		"a/b/c.ts", "a/b/d.ts",
		"a/x/e.ts", "a/b/c.ts",
		"a/x/f.ts", "a/b/d.ts",
		"a/x/f.ts", "*external*/react/dom",
	)
	internal := map[string]bool{"a/b/c.ts": true, "a/b/d.ts": true, "a/x/e.ts": true, "a/x/f.ts": true}

	got := depgraph.CollapseDepth(input, depgraph.DepthSpec{Internal: 2, External: 2}, "/", func(s string) bool {
		return internal[s]
	})

	assert.Equal(t, edges(
		"a/x", "a/b",
		"a/x", "*external*/react",
	), got)
}

func TestCollapseDepth_IsIdempotent(t *testing.T) {
	input := edges(
		"a/b/c", "a/d/e",
		"a/d/e", "f/g/h",
		"f/g/h", "a/b/i",
	)
	depth := depgraph.DepthSpec{Internal: 2, External: 2}

	once := depgraph.CollapseDepth(input, depth, "/", nil)
	twice := depgraph.CollapseDepth(once, depth, "/", nil)

	assert.Equal(t, once, twice)
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "com.acme", depgraph.TruncateName("com.acme.util.Strings", 2, "."))
	assert.Equal(t, "a/b", depgraph.TruncateName("a/b", 5, "/"))
	assert.Equal(t, "a/b/c", depgraph.TruncateName("a/b/c", 0, "/"))
}

func TestNormalize_RunsStagesInOrder(t *testing.T) {
	deps := depgraph.DependencyMapOf([]string{"src/app/main.ts", "src/app/view.ts", "src/lib/util.ts", "test/x.ts"}, map[string][]string{
		"src/app/main.ts": {"src/app/view.ts", "src/lib/util.ts", "react"},
		"src/app/view.ts": {"src/lib/util.ts"},
		"src/lib/util.ts": {},
		"test/x.ts":       {"src/app/main.ts"},
	})

	filtered, got, err := depgraph.Normalize(deps, depgraph.NormalizeOptions{
		ExcludeExternal: true,
		ResultFilter:    mustFilter(t, "-^test/"),
		Prefix:          "src/",
		Depth:           depgraph.DepthSpec{Internal: 1},
		Separator:       "/",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"src/app/main.ts", "src/app/view.ts", "src/lib/util.ts"}, filtered.Keys())
	assert.Equal(t, edges("app", "lib"), got)
}
