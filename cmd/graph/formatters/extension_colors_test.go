package formatters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LegacyCodeHQ/srcdep/cmd/graph/formatters"
)

func TestExtensionColors_SortedAssignment(t *testing.T) {
	colors := formatters.ExtensionColors([]string{"b/main.ts", "a/view.tsx", "lib/util.ts", "README"})

	assert.Equal(t, map[string]string{
		".ts":  "lightblue",
		".tsx": "lightyellow",
	}, colors)
}

func TestExtensionColors_Empty(t *testing.T) {
	assert.Empty(t, formatters.ExtensionColors(nil))
}
