package jsdata_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters/formattertest"
	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters/jsdata"
	"github.com/LegacyCodeHQ/srcdep/depgraph"
)

func TestJSFormatter_WrapsDataInConstant(t *testing.T) {
	output, err := (&jsdata.JSFormatter{}).Format(formattertest.SampleData(), formatters.RenderOptions{})
	require.NoError(t, err)

	body, ok := strings.CutPrefix(output, "const data = ")
	require.True(t, ok)
	body, ok = strings.CutSuffix(body, ";")
	require.True(t, ok)

	var decoded struct {
		Dependencies     map[string][]string `json:"dependencies"`
		FlatDependencies [][2]string         `json:"flatDependencies"`
		Contains         map[string]any      `json:"contains"`
		FlatContains     [][2]string         `json:"flatContains"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))

	assert.Equal(t, []string{"src/util/log.ts", "*external*/react"}, decoded.Dependencies["src/app.ts"])
	assert.Equal(t, [][2]string{
		{"src/app.ts", "src/util/log.ts"},
		{"src/app.ts", "*external*/react"},
		{"src/main.ts", "src/app.ts"},
	}, decoded.FlatDependencies)
	assert.Contains(t, decoded.Contains, "src")
	assert.Contains(t, decoded.Contains, "*external*")
	assert.Equal(t, [][2]string{
		{"", "src"},
		{"", "*external*/react"},
		{"src", "src/app.ts"},
		{"src", "src/util/log.ts"},
		{"src", "src/main.ts"},
	}, decoded.FlatContains)
}

func TestJSFormatter_IndentsWithFourSpaces(t *testing.T) {
	output, err := (&jsdata.JSFormatter{}).Format(formattertest.CycleData(), formatters.RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "\n    \"dependencies\": {")
}

func TestRawFormatter_MatchesCacheShape(t *testing.T) {
	data := formattertest.SampleData()

	output, err := (&jsdata.RawFormatter{}).Format(data, formatters.RenderOptions{})
	require.NoError(t, err)

	var info depgraph.DependencyInfo
	require.NoError(t, json.Unmarshal([]byte(output), &info))
	assert.Equal(t, data.Info.PathDependencies.Keys(), info.PathDependencies.Keys())
	assert.Equal(t, "/", info.ModuleSeparator)
}

func TestRawFormatter_RequiresScanResult(t *testing.T) {
	_, err := (&jsdata.RawFormatter{}).Format(&depgraph.DependencyData{}, formatters.RenderOptions{})

	assert.Error(t, err)
}
