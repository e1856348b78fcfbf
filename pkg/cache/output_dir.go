package cache

import (
	"path/filepath"
)

// OutputDir is the directory a build writes its generated artifacts to. The
// incremental cache lives in a subdirectory of it.
type OutputDir struct {
	root string
}

// NewOutputDir returns an OutputDir rooted at root. A relative root is
// resolved against the working directory when paths are requested.
func NewOutputDir(root string) OutputDir {
	return OutputDir{root: root}
}

// AbsolutePath returns the absolute path of name inside the output directory
func (o OutputDir) AbsolutePath(name string) string {
	path := filepath.Join(o.root, name)
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
