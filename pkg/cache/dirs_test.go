package cache

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := []string{}
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestNewCacheDirs(t *testing.T) {
	outDir := t.TempDir()
	dirs := NewCacheDirs(NewOutputDir(outDir))

	assert.Equal(t, filepath.Join(outDir, "incremental-cache"), dirs.Root)
	assert.Equal(t, filepath.Join(outDir, "incremental-cache", "uploads"), dirs.UploadsDir)
	assert.Equal(t, filepath.Join(outDir, "incremental-cache", "image"), dirs.ImageDir)

	_, err := os.Stat(dirs.Root)
	assert.True(t, os.IsNotExist(err), "nothing should be created before Create is called")
}

func TestCacheDirsCreate(t *testing.T) {
	dirs := NewCacheDirs(NewOutputDir(t.TempDir()))

	require.NoError(t, dirs.Create())
	assert.ElementsMatch(t, []string{"image", "uploads"}, listDir(t, dirs.Root))
	assert.Empty(t, listDir(t, dirs.UploadsDir))
	assert.Empty(t, listDir(t, dirs.ImageDir))
}

func TestCacheDirsCreateIsIdempotent(t *testing.T) {
	dirs := NewCacheDirs(NewOutputDir(t.TempDir()))
	require.NoError(t, dirs.Create())

	// leftovers from a previous build
	require.NoError(t, os.WriteFile(filepath.Join(dirs.UploadsDir, "%2fapp%2fnode_modules.tar"), []byte("stale"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dirs.ImageDir, "layer"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dirs.Root, "stray"), []byte("stale"), 0o600))

	require.NoError(t, dirs.Create())
	require.NoError(t, dirs.Create())

	assert.ElementsMatch(t, []string{"image", "uploads"}, listDir(t, dirs.Root))
	assert.Empty(t, listDir(t, dirs.UploadsDir))
	assert.Empty(t, listDir(t, dirs.ImageDir))
}

func TestCacheDirsCreateWithMissingOutDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "does", "not", "exist", "yet")
	dirs := NewCacheDirs(NewOutputDir(outDir))

	require.NoError(t, dirs.Create())
	assert.ElementsMatch(t, []string{"image", "uploads"}, listDir(t, dirs.Root))
}

func TestCacheDirsCreateFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on ENOTDIR")
	}

	// the output directory is a regular file, so nothing can live under it
	outDir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.WriteFile(outDir, []byte{}, 0o600))
	dirs := NewCacheDirs(NewOutputDir(outDir))

	err := dirs.Create()
	require.Error(t, err)

	var fsErr *FilesystemError
	require.True(t, xerrors.As(err, &fsErr))
	assert.Equal(t, "stat", fsErr.Op)
	assert.Equal(t, dirs.Root, fsErr.Path)
	assert.Contains(t, err.Error(), dirs.Root)
}

func TestOutputDirAbsolutePath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(wd, ".lazycache", "incremental-cache"), NewOutputDir(".lazycache").AbsolutePath("incremental-cache"))
	assert.Equal(t, filepath.Join("/out", "incremental-cache"), NewOutputDir("/out").AbsolutePath("incremental-cache"))
}
