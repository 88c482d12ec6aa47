package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toysetup/internal/adapters/fs"
)

const (
	canonical  = "x86_64-unknown-linux-gnu"
	misspelled = "x86_64-unkown-linux-gnu"
)

func TestLibrary_Normalize(t *testing.T) {
	t.Run("renames misspelled directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, misspelled, "lib"), 0o750))

		renamed, err := fs.NewLibrary().Normalize(dir, canonical, []string{misspelled})
		require.NoError(t, err)
		assert.True(t, renamed)
		assert.DirExists(t, filepath.Join(dir, canonical, "lib"))
		assert.NoDirExists(t, filepath.Join(dir, misspelled))
	})

	t.Run("no-op when alias is absent", func(t *testing.T) {
		dir := t.TempDir()
		renamed, err := fs.NewLibrary().Normalize(dir, canonical, []string{misspelled})
		require.NoError(t, err)
		assert.False(t, renamed)
	})

	t.Run("leaves both when canonical exists", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, canonical), 0o750))
		require.NoError(t, os.MkdirAll(filepath.Join(dir, misspelled), 0o750))

		renamed, err := fs.NewLibrary().Normalize(dir, canonical, []string{misspelled})
		require.NoError(t, err)
		assert.False(t, renamed)
		assert.DirExists(t, filepath.Join(dir, misspelled))
	})

	t.Run("ignores files named like the alias", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, misspelled), []byte("x"), 0o600))

		renamed, err := fs.NewLibrary().Normalize(dir, canonical, []string{misspelled})
		require.NoError(t, err)
		assert.False(t, renamed)
	})
}

func TestLibrary_RemoveArchives(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.tar.xz", "b.tar.gz", "c.tgz", "d.ZIP", "keep.a", ".receipts.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dir.zip"), 0o750))

	removed, err := fs.NewLibrary().RemoveArchives(dir)
	require.NoError(t, err)
	assert.Len(t, removed, 4)

	for _, name := range []string{"keep.a", ".receipts.json", "dir.zip"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	assert.NoFileExists(t, filepath.Join(dir, "a.tar.xz"))
}

func TestLibrary_RemoveArchives_MissingDir(t *testing.T) {
	removed, err := fs.NewLibrary().RemoveArchives(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, removed)
}

func TestLibrary_Promote(t *testing.T) {
	dir := t.TempDir()
	staging := filepath.Join(dir, ".staging-"+canonical)
	require.NoError(t, os.MkdirAll(filepath.Join(staging, canonical), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(staging, canonical, "new.a"), []byte("new"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, canonical), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, canonical, "old.a"), []byte("old"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "other-triple"), 0o750))

	promoted, err := fs.NewLibrary().Promote(staging, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, canonical)}, promoted)
	assert.FileExists(t, filepath.Join(dir, canonical, "new.a"))
	assert.NoFileExists(t, filepath.Join(dir, canonical, "old.a"))
	assert.DirExists(t, filepath.Join(dir, "other-triple"))
	assert.NoDirExists(t, staging)
}

func TestLibrary_Promote_MissingStaging(t *testing.T) {
	dir := t.TempDir()
	_, err := fs.NewLibrary().Promote(filepath.Join(dir, "absent"), dir)
	require.Error(t, err)
}
