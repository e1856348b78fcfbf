package cache

import (
	"strings"

	"github.com/samber/lo"
)

const (
	// containerHome is what ~ expands to inside build containers
	containerHome = "/root"

	// optionalMarker makes a COPY source segment match whether or not it exists
	optionalMarker = "?"
)

// PathSegment is a single component of a slash separated path
type PathSegment struct {
	Name     string
	Optional bool
}

func (s PathSegment) String() string {
	if s.Optional {
		return s.Name + optionalMarker
	}
	return s.Name
}

// NormalizeDir replaces every ~ in dir with the build container's home directory
func NormalizeDir(dir string) string {
	return strings.ReplaceAll(dir, "~", containerHome)
}

// SplitPath splits path into its non-empty segments, all of them required.
// Leading, trailing and repeated slashes leave no trace in the result.
func SplitPath(path string) []PathSegment {
	names := lo.Filter(strings.Split(path, "/"), func(name string, _ int) bool {
		return name != ""
	})

	return lo.Map(names, func(name string, _ int) PathSegment {
		return PathSegment{Name: name}
	})
}

// AllOptional returns a copy of segments in which every segment is optional
func AllOptional(segments []PathSegment) []PathSegment {
	return lo.Map(segments, func(segment PathSegment, _ int) PathSegment {
		segment.Optional = true
		return segment
	})
}

// JoinPath renders segments as a relative path
func JoinPath(segments []PathSegment) string {
	return strings.Join(lo.Map(segments, func(segment PathSegment, _ int) string {
		return segment.String()
	}), "/")
}

// ArchiveFileName is the name of the tar archive a cached directory is uploaded
// as: the directory with each slash percent-encoded, plus a .tar suffix
func ArchiveFileName(dir string) string {
	return strings.ReplaceAll(dir, "/", "%2f") + ".tar"
}
