package formats

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatsCommand_PrintsFormatsWithDescriptions(t *testing.T) {
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	expected := `plain    Plain text, one edge per line
dot      Graphviz DOT with nested clusters
dgml     Directed Graph Markup Language, well supported by Visual Studio
js       JavaScript data blob
raw      Raw scan result as JSON
vis      Self-contained HTML visualization powered by vis.js
mermaid  Mermaid.js flowchart
`
	assert.Equal(t, expected, out.String())
}
