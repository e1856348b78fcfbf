package utils

import (
	"io"
	"testing"

	"github.com/fatih/color"
	"github.com/go-errors/errors"
	"github.com/stretchr/testify/assert"
)

func TestResolvePlaceholderString(t *testing.T) {
	type scenario struct {
		templateString string
		arguments      map[string]string
		expected       string
	}

	scenarios := []scenario{
		{
			"",
			map[string]string{},
			"",
		},
		{
			"hello",
			map[string]string{},
			"hello",
		},
		{
			"hello {{arg}}",
			map[string]string{},
			"hello {{arg}}",
		},
		{
			"hello {{arg}}",
			map[string]string{"arg": "there"},
			"hello there",
		},
		{
			"hello",
			map[string]string{"arg": "there"},
			"hello",
		},
		{
			"{{nothing}}",
			map[string]string{"nothing": ""},
			"",
		},
		{
			"{{}} {{ this }} { should not throw}} an {{{{}}}} error",
			map[string]string{
				"blah": "blah",
				"this": "won't match",
			},
			"{{}} {{ this }} { should not throw}} an {{{{}}}} error",
		},
	}

	for _, s := range scenarios {
		assert.EqualValues(t, s.expected, ResolvePlaceholderString(s.templateString, s.arguments))
	}
}

// TestFormatMap is a function.
func TestFormatMap(t *testing.T) {
	color.NoColor = true

	assert.EqualValues(t, "none\n", FormatMap(2, map[string]string{}))
	assert.EqualValues(t,
		"\n  image: /out/incremental-cache/image\n  uploads: /out/incremental-cache/uploads\n",
		FormatMap(2, map[string]string{
			"uploads": "/out/incremental-cache/uploads",
			"image":   "/out/incremental-cache/image",
		}),
	)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// TestCloseMany is a function.
func TestCloseMany(t *testing.T) {
	calls := 0
	closers := []io.Closer{
		closerFunc(func() error { calls++; return nil }),
		closerFunc(func() error { calls++; return errors.New("first") }),
		closerFunc(func() error { calls++; return errors.New("second") }),
	}

	assert.EqualError(t, CloseMany(closers), "first")
	assert.Equal(t, 3, calls)
	assert.NoError(t, CloseMany(nil))
}
