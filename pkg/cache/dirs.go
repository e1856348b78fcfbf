package cache

import (
	"os"
	"path/filepath"

	"github.com/go-errors/errors"
)

const (
	incrementalCacheDir        = "incremental-cache"
	incrementalCacheUploadsDir = "uploads"
	incrementalCacheImageDir   = "image"
)

// CacheDirs are the directories the incremental cache is staged in. UploadsDir
// receives one archive per cached directory from the build container; ImageDir
// is scratch space for building the cache image.
type CacheDirs struct {
	Root       string
	UploadsDir string
	ImageDir   string
}

// NewCacheDirs derives the cache directories from the output directory. Nothing
// is touched on disk until Create is called.
func NewCacheDirs(outDir OutputDir) *CacheDirs {
	root := outDir.AbsolutePath(incrementalCacheDir)

	return &CacheDirs{
		Root:       root,
		UploadsDir: filepath.Join(root, incrementalCacheUploadsDir),
		ImageDir:   filepath.Join(root, incrementalCacheImageDir),
	}
}

// Create resets the cache directories: whatever exists of the cache root and
// its subdirectories is removed, then empty image and uploads directories are
// created. Calling it repeatedly always ends with the same two empty
// directories, so archives from an earlier build never leak into this one.
func (d *CacheDirs) Create() error {
	for _, dir := range []string{d.Root, d.ImageDir, d.UploadsDir} {
		if err := removeIfExists(dir); err != nil {
			return err
		}
	}

	for _, dir := range []string{d.ImageDir, d.UploadsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(&FilesystemError{Op: "create", Path: dir, Err: err}, 0)
		}
	}

	return nil
}

func removeIfExists(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(&FilesystemError{Op: "stat", Path: dir, Err: err}, 1)
	}

	if err := os.RemoveAll(dir); err != nil {
		return errors.Wrap(&FilesystemError{Op: "remove", Path: dir, Err: err}, 1)
	}

	return nil
}
