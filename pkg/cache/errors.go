package cache

import (
	"fmt"
)

// FilesystemError is returned when the cache directories cannot be inspected,
// removed or created. It is always fatal to the cache operation at hand.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
