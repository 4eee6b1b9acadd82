package graph

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func typeScriptProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"src/app.ts":  "import { log } from './util';\nimport React from 'react';\n",
		"src/util.ts": "export const log = (s: string) => s;\n",
	})
	return root
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewCommand()
	cmd.SetArgs(args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGraph_PlainOutput(t *testing.T) {
	root := typeScriptProject(t)

	stdout, stderr, err := execute(t, root, "-l", "typescript")

	require.NoError(t, err)
	assert.Equal(t, "src/app.ts -> src/util.ts\nsrc/app.ts -> *external*/react\n", stdout)
	assert.Contains(t, stderr, "processing 2 files...")
}

func TestGraph_AutoLanguage(t *testing.T) {
	root := typeScriptProject(t)

	stdout, _, err := execute(t, root)

	require.NoError(t, err)
	assert.Contains(t, stdout, "src/app.ts -> src/util.ts")
}

func TestGraph_ExcludeExternal(t *testing.T) {
	root := typeScriptProject(t)

	stdout, _, err := execute(t, root, "-l", "typescript", "-x")

	require.NoError(t, err)
	assert.Equal(t, "src/app.ts -> src/util.ts\n", stdout)
}

func TestGraph_JavaModuleView(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"src/com/example/App.java":         "package com.example;\n\nimport com.example.util.Helper;\n\npublic class App {}\n",
		"src/com/example/util/Helper.java": "package com.example.util;\n\npublic class Helper {}\n",
	})

	stdout, _, err := execute(t, root, "-l", "java", "-f", "dot")

	require.NoError(t, err)
	assert.Contains(t, stdout, `"com.example.App" -> "com.example.util.Helper"`)
	assert.Contains(t, stdout, "subgraph cluster_com {")
}

func TestGraph_GoPackageView(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"go.mod":                  "module github.com/acme/shop\n\ngo 1.22\n",
		"main.go":                 "package main\n\nimport (\n\t\"fmt\"\n\t\"github.com/acme/shop/internal/store\"\n)\n",
		"internal/store/store.go": "package store\n",
	})

	stdout, _, err := execute(t, root, "-l", "go")

	require.NoError(t, err)
	assert.Equal(t, "github.com/acme/shop -> github.com/acme/shop/internal/store\n", stdout)
}

func TestGraph_ForcePathView(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"App.java":    "package app;\n\nimport app.Helper;\n\npublic class App {}\n",
		"Helper.java": "package app;\n\npublic class Helper {}\n",
	})

	stdout, _, err := execute(t, root, "-l", "java", "--force-path")

	require.NoError(t, err)
	assert.Equal(t, "App.java -> Helper.java\n", stdout)
}

func TestGraph_UnknownLanguage(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "-l", "cobol")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language: cobol")
}

func TestGraph_UnknownFormat(t *testing.T) {
	_, _, err := execute(t, t.TempDir(), "-f", "svg")

	assert.EqualError(t, err, "unknown format: svg (valid options: plain, dot, dgml, js, raw, vis, mermaid)")
}

func TestGraph_OutputFile(t *testing.T) {
	root := typeScriptProject(t)
	out := filepath.Join(t.TempDir(), "graph.txt")

	stdout, _, err := execute(t, root, "-l", "typescript", "-o", out)

	require.NoError(t, err)
	assert.Empty(t, stdout)
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "src/app.ts -> src/util.ts\nsrc/app.ts -> *external*/react\n", string(content))
}

func TestGraph_CacheFileSkipsScan(t *testing.T) {
	root := typeScriptProject(t)
	cache := filepath.Join(t.TempDir(), "deps.json")

	first, _, err := execute(t, root, "-l", "typescript", "--cache", cache)
	require.NoError(t, err)
	require.FileExists(t, cache)

	require.NoError(t, os.Remove(filepath.Join(root, "src", "app.ts")))
	second, stderr, err := execute(t, root, "-l", "typescript", "--cache", cache)

	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotContains(t, stderr, "processing")
}

func TestGraph_ConfigFile(t *testing.T) {
	root := typeScriptProject(t)
	configFile := filepath.Join(t.TempDir(), "srcdep.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("language: typescript\noutputFormat: dot\nexcludeExternal: true\n"), 0o644))

	stdout, _, err := execute(t, root, "--config", configFile)

	require.NoError(t, err)
	assert.Contains(t, stdout, `"src/app.ts" -> "src/util.ts"`)
	assert.NotContains(t, stdout, "react")
}

func TestGraph_FlagOverridesConfigFile(t *testing.T) {
	root := typeScriptProject(t)
	configFile := filepath.Join(t.TempDir(), "srcdep.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("outputFormat: dot\n"), 0o644))

	stdout, _, err := execute(t, root, "--config", configFile, "-f", "plain")

	require.NoError(t, err)
	assert.NotContains(t, stdout, "digraph")
}

func TestGraph_EnvironmentOverridesConfigFile(t *testing.T) {
	root := typeScriptProject(t)
	configFile := filepath.Join(t.TempDir(), "srcdep.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("excludeExternal: false\n"), 0o644))
	t.Setenv("SRCDEP_EXCLUDE_EXTERNAL", "true")

	stdout, _, err := execute(t, root, "--config", configFile)

	require.NoError(t, err)
	assert.Equal(t, "src/app.ts -> src/util.ts\n", stdout)
}

func TestGraph_ResultFilterAndPrefix(t *testing.T) {
	root := typeScriptProject(t)

	stdout, _, err := execute(t, root, "--filter=-react", "--prefix", "src/")

	require.NoError(t, err)
	assert.Equal(t, "app.ts -> util.ts\n", stdout)
}

func TestGraph_InputFilterSkipsAuxiliaryFolders(t *testing.T) {
	root := typeScriptProject(t)
	writeFiles(t, root, map[string]string{
		"node_modules/react/index.js": "module.exports = {};\n",
		"test/app.test.ts":            "import '../src/app';\n",
	})

	stdout, stderr, err := execute(t, root, "--input-filter=-^test/")

	require.NoError(t, err)
	assert.Contains(t, stderr, "processing 2 files...")
	assert.NotContains(t, stdout, "test/")
}

func TestGraph_URLUnsupportedFallsBackToOutput(t *testing.T) {
	root := typeScriptProject(t)

	stdout, stderr, err := execute(t, root, "-u")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: URL generation is not supported for plain format")
	assert.Contains(t, stdout, "src/app.ts -> src/util.ts")
}

func TestGraph_DotURL(t *testing.T) {
	root := typeScriptProject(t)

	stdout, _, err := execute(t, root, "-f", "dot", "-u")

	require.NoError(t, err)
	assert.Contains(t, stdout, "https://dreampuf.github.io/GraphvizOnline/?engine=dot#")
}

func TestGraph_SingleFileTarget(t *testing.T) {
	root := typeScriptProject(t)

	stdout, stderr, err := execute(t, filepath.Join(root, "src", "app.ts"))

	require.NoError(t, err)
	assert.Contains(t, stderr, "processing 1 files...")
	assert.Contains(t, stdout, "app.ts -> *external*/")
	assert.NotContains(t, stdout, "src/")
}
