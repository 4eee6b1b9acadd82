package why

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func project(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"a.py": "import b\nimport x\n",
		"b.py": "import c\n",
		"c.py": "",
		"x.py": "",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0o644))
	}
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCommand()
	cmd.SetArgs(args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestWhy_ShowsPathEdgesOnly(t *testing.T) {
	stdout, err := execute(t, "-t", project(t), "-l", "python", "a.py", "c.py")

	require.NoError(t, err)
	assert.Equal(t, "a.py -> b.py\nb.py -> c.py\n", stdout)
}

func TestWhy_ArgumentOrderDoesNotMatter(t *testing.T) {
	stdout, err := execute(t, "-t", project(t), "-l", "python", "c.py", "a.py")

	require.NoError(t, err)
	assert.Equal(t, "a.py -> b.py\nb.py -> c.py\n", stdout)
}

func TestWhy_NoPath(t *testing.T) {
	_, err := execute(t, "-t", project(t), "-l", "python", "c.py", "x.py")

	assert.EqualError(t, err, "no dependency path between c.py, x.py")
}

func TestWhy_RequiresTwoEntities(t *testing.T) {
	_, err := execute(t, "a.py")

	assert.Error(t, err)
}
