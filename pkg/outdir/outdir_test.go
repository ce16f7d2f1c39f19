package outdir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare_CreatesNested(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runs", "2024-05-01")

	require.NoError(t, Prepare(dir, false, nil))
	assert.DirExists(t, dir)
}

func TestPrepare_ExistingWithoutForce(t *testing.T) {
	dir := t.TempDir()
	keep := filepath.Join(dir, "keep.jsonl")
	require.NoError(t, os.WriteFile(keep, []byte("{}\n"), 0o644))

	err := Prepare(dir, false, nil)
	require.ErrorIs(t, err, ErrExists)
	assert.Contains(t, err.Error(), dir)
	assert.FileExists(t, keep, "existing contents must not be touched")
}

func TestPrepare_ExistingWithForce(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "merge_logs.jsonl")
	require.NoError(t, os.WriteFile(old, []byte("{}\n"), 0o644))

	require.NoError(t, Prepare(dir, true, nil))
	assert.DirExists(t, dir)
	assert.NoFileExists(t, old)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
