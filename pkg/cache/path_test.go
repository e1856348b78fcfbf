package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeDir is a function.
func TestNormalizeDir(t *testing.T) {
	type scenario struct {
		dir      string
		expected string
	}

	scenarios := []scenario{
		{"~", "/root"},
		{"~/.cache", "/root/.cache"},
		{"~/.cache/~", "/root/.cache//root"},
		{"/app/node_modules", "/app/node_modules"},
		{"./parent_dir/child_dir", "./parent_dir/child_dir"},
		{"", ""},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, NormalizeDir(s.dir))
	}
}

func TestNormalizedHomeDirsStartWithRoot(t *testing.T) {
	for _, dir := range []string{"~", "~/", "~/.npm", "~/.cache/pip", "~root"} {
		assert.True(t, strings.HasPrefix(NormalizeDir(dir), "/root"), dir)
	}
}

// TestSplitPath is a function.
func TestSplitPath(t *testing.T) {
	type scenario struct {
		path     string
		expected []PathSegment
	}

	scenarios := []scenario{
		{"", []PathSegment{}},
		{"/", []PathSegment{}},
		{
			"./parent_dir/child_dir",
			[]PathSegment{{Name: "."}, {Name: "parent_dir"}, {Name: "child_dir"}},
		},
		{
			"//root//.cache/",
			[]PathSegment{{Name: "root"}, {Name: ".cache"}},
		},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, SplitPath(s.path))
	}
}

func TestAllOptional(t *testing.T) {
	segments := SplitPath("/app/node_modules")
	optional := AllOptional(segments)

	assert.Equal(t, []PathSegment{{Name: "app", Optional: true}, {Name: "node_modules", Optional: true}}, optional)
	// the input is left untouched
	assert.False(t, segments[0].Optional)
}

// TestJoinPath is a function.
func TestJoinPath(t *testing.T) {
	type scenario struct {
		segments []PathSegment
		expected string
	}

	scenarios := []scenario{
		{[]PathSegment{}, ""},
		{[]PathSegment{{Name: "app"}}, "app"},
		{[]PathSegment{{Name: "app", Optional: true}, {Name: "cache"}}, "app?/cache"},
		{AllOptional(SplitPath("./parent_dir/child_dir")), ".?/parent_dir?/child_dir?"},
		{AllOptional(SplitPath("/root/.cache")), "root?/.cache?"},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, JoinPath(s.segments))
	}
}

// TestArchiveFileName is a function.
func TestArchiveFileName(t *testing.T) {
	type scenario struct {
		dir      string
		expected string
	}

	scenarios := []scenario{
		{"./parent_dir/child_dir", ".%2fparent_dir%2fchild_dir.tar"},
		{"/root/.cache", "%2froot%2f.cache.tar"},
		{"node_modules", "node_modules.tar"},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, ArchiveFileName(s.dir))
	}
}
