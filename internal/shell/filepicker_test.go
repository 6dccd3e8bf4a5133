package shell

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles_RespectsGitignore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("*.log\nbuild/\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.log"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "build"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "build", "artifact.bin"), []byte("x"), 0o644))

	got, err := listFiles(dir)
	require.NoError(t, err)
	sort.Strings(got)

	assert.Contains(t, got, "keep.txt")
	assert.Contains(t, got, ".gitignore")
	assert.NotContains(t, got, "skip.log")
	for _, f := range got {
		assert.NotContains(t, f, "build")
	}
}

func TestListFiles_NoGitignoreListsEverything(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))

	got, err := listFiles(dir)
	require.NoError(t, err)
	assert.Contains(t, got, "a.txt")
}
