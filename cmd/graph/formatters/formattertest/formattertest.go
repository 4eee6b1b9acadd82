// Package formattertest holds fixtures shared by the renderer tests.
package formattertest

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/LegacyCodeHQ/srcdep/depgraph"
)

// Goldie returns a golden file checker reading testdata/<name>.gold.txt.
func Goldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t, goldie.WithNameSuffix(".gold.txt"))
}

// SampleData is a small path view: two source directories and one package
// that does not resolve to a scanned file.
//
//	src/app.ts  -> src/util/log.ts, react
//	src/main.ts -> src/app.ts
func SampleData() *depgraph.DependencyData {
	return build([]string{"src/app.ts", "src/util/log.ts", "src/main.ts"}, map[string][]string{
		"src/app.ts":      {"src/util/log.ts", depgraph.MarkExternal("react")},
		"src/util/log.ts": {},
		"src/main.ts":     {"src/app.ts"},
	})
}

// CycleData is a two file cycle.
func CycleData() *depgraph.DependencyData {
	return build([]string{"a.ts", "b.ts"}, map[string][]string{
		"a.ts": {"b.ts"},
		"b.ts": {"a.ts"},
	})
}

func build(keys []string, adjacency map[string][]string) *depgraph.DependencyData {
	info := depgraph.NewDependencyInfo("/")
	info.PathDependencies = depgraph.DependencyMapOf(keys, adjacency)
	data, err := depgraph.BuildDependencyData(info, depgraph.PipelineOptions{})
	if err != nil {
		panic(err)
	}
	return data
}
