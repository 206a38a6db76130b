package resource

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-carousel/carousel"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"slides/intro.txt":        {Data: []byte("Welcome")},
		"slides/gallery/02.txt":   {Data: []byte("second")},
		"slides/gallery/01.txt":   {Data: []byte("first")},
		"slides/gallery/.hidden":  {Data: []byte("x")},
		"slides/gallery/logo.png": {Data: []byte{0x89}},
		"slides/empty/.keep":      {Data: nil},
	}
}

func TestResolveDirectoryInNameOrder(t *testing.T) {
	r := NewFSResolver(testFS(), ".txt")

	got, err := r.Resolve("slides/gallery")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "01", got[0].Name)
	require.Equal(t, "slides/gallery/01.txt", got[0].Path)
	require.Equal(t, []byte("first"), got[0].Body)
	require.Equal(t, "02", got[1].Name)
}

func TestResolveWithoutExtensionFilter(t *testing.T) {
	got, err := NewFSResolver(testFS()).Resolve("slides/gallery")
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestResolveFileAndStem(t *testing.T) {
	r := NewFSResolver(testFS(), ".txt")

	byFile, err := r.Resolve("slides/intro.txt")
	require.NoError(t, err)
	require.Len(t, byFile, 1)

	byStem, err := r.Resolve("/slides/intro")
	require.NoError(t, err)
	require.Equal(t, byFile, byStem)
}

func TestResolveFileHonoursExtensionFilter(t *testing.T) {
	r := NewFSResolver(testFS(), ".txt")

	got, err := r.Resolve("slides/gallery/logo.png")
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = carousel.Expand([]carousel.Item{{ResourcePath: "slides/gallery/logo.png"}}, r)
	require.ErrorIs(t, err, carousel.ErrConfiguration)

	all, err := NewFSResolver(testFS()).Resolve("slides/gallery/logo.png")
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestResolveMissing(t *testing.T) {
	_, err := NewFSResolver(testFS()).Resolve("slides/nope")
	require.True(t, errors.Is(err, fs.ErrNotExist), "expected ErrNotExist, got %v", err)

	_, err = NewFSResolver(testFS()).Resolve("../etc")
	require.Error(t, err)
}

func TestEmptyDirectoryFailsExpansion(t *testing.T) {
	r := NewFSResolver(testFS(), ".txt")

	got, err := r.Resolve("slides/empty")
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = carousel.Expand([]carousel.Item{{ResourcePath: "slides/empty", IsMulti: true}}, r)
	require.ErrorIs(t, err, carousel.ErrConfiguration)
}

func TestStaticResolver(t *testing.T) {
	s := Static{"a": {{Name: "a"}}}

	got, err := s.Resolve("a")
	require.NoError(t, err)
	require.Len(t, got, 1)

	none, err := s.Resolve("b")
	require.NoError(t, err)
	require.Empty(t, none)
}
