package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRoot builds an input folder with the category subdirectories and the
// given files (paths relative to the root).
func newRoot(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	return root
}

func TestResolve(t *testing.T) {
	root := newRoot(t, "landscapes/lisbon.png")
	lib := NewLibrary(root)

	path, err := lib.Landscape("lisbon.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "landscapes", "lisbon.png"), path)
}

// TestResolve_Missing verifies the typed error carries category, name and
// the path that was checked.
func TestResolve_Missing(t *testing.T) {
	lib := NewLibrary(newRoot(t))

	_, err := lib.Flag("portugal.png")
	var mae *MissingAssetError
	require.ErrorAs(t, err, &mae)
	assert.Equal(t, Flags, mae.Category)
	assert.Equal(t, "portugal.png", mae.Name)
	assert.Contains(t, mae.Path, filepath.Join("flags", "portugal.png"))
}

// TestResolve_Absolute verifies that absolute references bypass the
// category directories entirely.
func TestResolve_Absolute(t *testing.T) {
	outside := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0644))

	lib := NewLibrary(newRoot(t))
	path, err := lib.Landscape(outside)
	require.NoError(t, err)
	assert.Equal(t, outside, path)
}

// TestIdentifierNaming verifies the identifier-to-filename conventions of
// transport icons and continent outlines.
func TestIdentifierNaming(t *testing.T) {
	root := newRoot(t, "transport_icons/bus.png", "continents/europe_outline.png")
	lib := NewLibrary(root)

	path, err := lib.TransportIcon("bus")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, Transport, "bus.png"), path)

	path, err = lib.ContinentOutline("europe")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, Continents, "europe_outline.png"), path)

	_, err = lib.TransportIcon("zeppelin")
	var mae *MissingAssetError
	assert.ErrorAs(t, err, &mae)
}

func TestDeckFont(t *testing.T) {
	lib := NewLibrary(newRoot(t))
	assert.Equal(t, "", lib.DeckFont())

	root := newRoot(t, "zz.ttf", "aa.ttf", "notes.txt")
	lib = NewLibrary(root)
	assert.Equal(t, filepath.Join(root, "aa.ttf"), lib.DeckFont())
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteError_Unwrap(t *testing.T) {
	inner := os.ErrPermission
	err := &WriteError{Path: "/nope", Err: inner}
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "/nope")
}
