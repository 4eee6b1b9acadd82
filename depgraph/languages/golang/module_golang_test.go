package golang

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
)

func TestParseImports(t *testing.T) {
	source := `package app

import "fmt"

import (
	"net/http"
	cfg "github.com/acme/shop/internal/config"
	_ ` + "`github.com/lib/pq`" + `
)
`
	imports, err := ParseImports([]byte(source))

	require.NoError(t, err)
	assert.Equal(t, []string{"fmt", "net/http", "github.com/acme/shop/internal/config", "github.com/lib/pq"}, imports)
}

func TestIsStandardLibrary(t *testing.T) {
	assert.True(t, IsStandardLibrary("fmt"))
	assert.True(t, IsStandardLibrary("encoding/json"))
	assert.False(t, IsStandardLibrary("github.com/spf13/cobra"))
	assert.False(t, IsStandardLibrary("golang.org/x/mod/modfile"))
}

func memReader(files map[string]string) langsupport.ContentReader {
	return func(p string) ([]byte, error) {
		if content, ok := files[filepath.ToSlash(p)]; ok {
			return []byte(content), nil
		}
		return nil, fs.ErrNotExist
	}
}

func TestParse_UsesNearestGoMod(t *testing.T) {
	reader := memReader(map[string]string{
		"go.mod":               "module github.com/acme/shop\n\ngo 1.22\n",
		"internal/api/api.go":  "package api\n\nimport (\n\t\"fmt\"\n\t\"github.com/acme/shop/internal/store\"\n)\n",
		"tools/gen/go.mod":     "module github.com/acme/gen\n",
		"tools/gen/cmd/gen.go": "package main\n",
	})

	ctx := langsupport.NewParseContext("", nil, "internal/api/api.go", reader, nil, nil)
	result, err := Module{}.Parse(ctx)

	require.NoError(t, err)
	assert.Equal(t, "github.com/acme/shop/internal/api", result.Module)
	assert.Equal(t, []langsupport.ModuleDependency{
		{Module: "github.com/acme/shop/internal/api", Dependencies: []string{"github.com/acme/shop/internal/store"}},
	}, result.ModuleDependencies)

	nested := langsupport.NewParseContext("", nil, "tools/gen/cmd/gen.go", reader, nil, nil)
	assert.Equal(t, "github.com/acme/gen/cmd", PackagePath(nested))
}

func TestParse_StandardLibraryOption(t *testing.T) {
	reader := memReader(map[string]string{
		"main.go": "package main\n\nimport \"os\"\n",
	})

	ctx := langsupport.NewParseContext("", nil, "main.go", reader, nil, map[string]any{OptionStandardLibrary: true})
	result, err := Module{}.Parse(ctx)

	require.NoError(t, err)
	assert.Equal(t, ".", result.Module)
	assert.Equal(t, []string{"os"}, result.ModuleDependencies[0].Dependencies)
}
