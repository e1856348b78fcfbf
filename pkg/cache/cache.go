package cache

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

// ImageImporter creates an image tagged tag whose filesystem is the content of
// the archive at file
type ImageImporter interface {
	ImportImage(ctx context.Context, file string, tag string) error
}

// ImageChecker tells whether an image exists in its remote registry
type ImageChecker interface {
	ImageExists(ctx context.Context, image string) (bool, error)
}

// IncrementalCache packages uploaded cache archives into an image and looks
// that image up again on later builds
type IncrementalCache struct {
	Log      *logrus.Entry
	Importer ImageImporter
	Checker  ImageChecker
}

// NewIncrementalCache returns an IncrementalCache using the given backends
func NewIncrementalCache(log *logrus.Entry, importer ImageImporter, checker ImageChecker) *IncrementalCache {
	return &IncrementalCache{
		Log:      log,
		Importer: importer,
		Checker:  checker,
	}
}

// CreateImage imports every file in the uploads directory, tagging each import
// with tag. The first failed import aborts the whole operation; the remaining
// files are not attempted and nothing is rolled back.
func (c *IncrementalCache) CreateImage(ctx context.Context, dirs *CacheDirs, tag string) error {
	entries, err := os.ReadDir(dirs.UploadsDir)
	if err != nil {
		return errors.Wrap(&FilesystemError{Op: "read", Path: dirs.UploadsDir, Err: err}, 0)
	}

	// TODO: each import replaces what tag points at rather than adding a layer,
	// so with several cached directories only the last archive ends up in the
	// image. Needs a decision on whether the cache image should be layered.
	for _, entry := range entries {
		file := filepath.Join(dirs.UploadsDir, entry.Name())
		c.Log.WithField("file", file).Info("importing incremental cache archive")

		if err := c.Importer.ImportImage(ctx, file, tag); err != nil {
			return err
		}
	}

	c.Log.Infof("Incremental cache image created: %s", tag)
	return nil
}

// ImageExists tells whether the cache image tag exists in its registry. Failing
// lookups count as a missing image; an error means the lookup itself could not
// be attempted.
func (c *IncrementalCache) ImageExists(ctx context.Context, tag string) (bool, error) {
	exists, err := c.Checker.ImageExists(ctx, tag)
	if err != nil {
		return false, err
	}

	c.Log.WithField("exists", exists).Infof("checked incremental cache image %s", tag)
	return exists, nil
}
