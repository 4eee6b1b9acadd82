package csharp

import (
	"testing"

	"github.com/LegacyCodeHQ/srcdep/depgraph/langsupport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompilationUnit_BlockNamespace(t *testing.T) {
	source := `
using System;
using static System.Math;
using Json = Newtonsoft.Json;

namespace Acme.Billing
{
    using Acme.Core;

    public class Invoice {}
}
`
	unit, err := ParseCompilationUnit([]byte(source))

	require.NoError(t, err)
	assert.Equal(t, []string{"Acme.Billing"}, unit.Namespaces)
	assert.Equal(t, []string{"System", "System.Math", "Newtonsoft.Json", "Acme.Core"}, unit.Usings)
}

func TestParseCompilationUnit_FileScopedNamespace(t *testing.T) {
	source := `
using Acme.Core;

namespace Acme.Web;

public class Controller {}
`
	unit, err := ParseCompilationUnit([]byte(source))

	require.NoError(t, err)
	assert.Equal(t, []string{"Acme.Web"}, unit.Namespaces)
	assert.Equal(t, []string{"Acme.Core"}, unit.Usings)
}

func TestModule_ParseWithoutNamespace(t *testing.T) {
	ctx := langsupport.NewParseContext("", []string{"tools/Program.cs"}, "tools/Program.cs", func(string) ([]byte, error) {
		return []byte("using System;\nclass Program { static void Main() {} }\n"), nil
	}, nil, nil)

	result, err := Module{}.Parse(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Program", result.Module)
	assert.Equal(t, []langsupport.ModuleDependency{
		{Module: "Program", Dependencies: []string{"System"}},
	}, result.ModuleDependencies)
}
