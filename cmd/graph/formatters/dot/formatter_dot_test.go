package dot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters"
	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters/dot"
	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters/formattertest"
)

func TestFormat_NestedClusters(t *testing.T) {
	output, err := (&dot.Formatter{}).Format(formattertest.SampleData(), formatters.RenderOptions{})
	require.NoError(t, err)

	g := formattertest.Goldie(t)
	g.Assert(t, t.Name(), []byte(output))
}

func TestFormat_Label(t *testing.T) {
	output, err := (&dot.Formatter{}).Format(formattertest.CycleData(), formatters.RenderOptions{Label: "demo • 2 files"})
	require.NoError(t, err)

	g := formattertest.Goldie(t)
	g.Assert(t, t.Name(), []byte(output))
}

func TestGenerateURL(t *testing.T) {
	url, ok := (&dot.Formatter{}).GenerateURL("digraph {\n}")

	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(url, "https://dreampuf.github.io/GraphvizOnline/?engine=dot#"))
	assert.Contains(t, url, "digraph%20%7B%0A%7D")
}
