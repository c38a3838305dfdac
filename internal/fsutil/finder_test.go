package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.hcl", "a.yaml", "notes.txt", "nested/c.hcl", "nested/deeper/d.yml"} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o600))
	}

	got, err := FindFilesByExtension(root, ".hcl", ".yaml", ".yml")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.yaml"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested/c.hcl"),
		filepath.Join(root, "nested/deeper/d.yml"),
	}, got)

	_, err = FindFilesByExtension(filepath.Join(root, "missing"), ".hcl")
	require.Error(t, err)

	assert.Panics(t, func() { _, _ = FindFilesByExtension(root) })
}
