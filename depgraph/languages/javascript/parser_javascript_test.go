package javascript

import (
	"testing"

	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJavaScriptImports_Basic(t *testing.T) {
	source := `
import React from 'react';
import { useState } from 'react';
import { Button } from './components/Button';
import fs from 'fs';
`
	imports, err := ParseJavaScriptImports([]byte(source))

	require.NoError(t, err)
	assert.Equal(t, []string{"react", "react", "./components/Button", "fs"}, ImportPaths(imports))
	assert.Equal(t, ImportNodeBuiltin, imports[3].Kind)
	assert.Equal(t, ImportInternal, imports[2].Kind)
	assert.Equal(t, ImportExternal, imports[0].Kind)
}

func TestParseJavaScriptImports_JSX(t *testing.T) {
	source := `
import React from 'react';
import { Button } from './components/Button';

export default function App() {
	return <Button />;
}
`
	imports, err := ParseJavaScriptImports([]byte(source))

	require.NoError(t, err)
	assert.Equal(t, []string{"react", "./components/Button"}, ImportPaths(imports))
}

func TestParseJavaScriptImports_AllStatementKinds(t *testing.T) {
	source := `
import './polyfill';
export { helper } from "./helpers";
export * from './all';
const lodash = require('lodash');
async function load() {
	const mod = await import('./lazy');
	return mod;
}
const notAnImport = other('./ignored');
`
	imports, err := ParseJavaScriptImports([]byte(source))

	require.NoError(t, err)
	assert.Equal(t, []string{"./polyfill", "./helpers", "./all", "lodash", "./lazy"}, ImportPaths(imports))
	assert.Equal(t, "export", imports[1].Statement)
	assert.Equal(t, "require", imports[3].Statement)
	assert.Equal(t, "dynamic", imports[4].Statement)
}

func TestClassifyImport(t *testing.T) {
	assert.Equal(t, ImportNodeBuiltin, ClassifyImport("node:path"))
	assert.Equal(t, ImportNodeBuiltin, ClassifyImport("fs/promises"))
	assert.Equal(t, ImportInternal, ClassifyImport("../x"))
	assert.Equal(t, ImportExternal, ClassifyImport("@scope/pkg"))
}

func TestModule_ParseVue(t *testing.T) {
	source := `<template>
  <div>{{ msg }}</div>
</template>

<script>
import Child from './Child.vue'
export default { components: { Child } }
</script>
`
	ctx := langsupport.NewParseContext("", []string{"App.vue"}, "App.vue", func(string) ([]byte, error) {
		return []byte(source), nil
	}, nil, nil)

	result, err := Module{}.Parse(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"./Child.vue"}, result.PathDependencies)
}

func TestModule_CandidateSuffixes(t *testing.T) {
	suffixes := Module{}.CandidateSuffixes()

	assert.Equal(t, ".js", suffixes[0])
	assert.Contains(t, suffixes, "/index.js")
	assert.Contains(t, suffixes, "/index.vue")
}
