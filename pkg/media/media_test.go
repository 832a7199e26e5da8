package media

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KlienGumapac/freedomewall/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

func TestResolvePassesThroughURLsAndDataURIs(t *testing.T) {
	for _, ref := range []string{
		"https://picsum.photos/800/600",
		"data:image/png;base64,AAAA",
	} {
		got, err := Resolve(ref)
		require.NoError(t, err)
		assert.Equal(t, ref, got)
	}
}

func TestResolveEncodesLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dot.png")
	require.NoError(t, os.WriteFile(path, pngBytes, 0600))

	got, err := Resolve(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "data:image/png;base64,"))

	decoded, err := storage.ParseDataURI(got)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, decoded.Data)
}

func TestResolveRejects(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0600))
	_, err = Resolve(path)
	assert.ErrorIs(t, err, storage.ErrInvalidImage)
}

func TestResolveAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dot.png")
	require.NoError(t, os.WriteFile(path, pngBytes, 0600))

	images, err := ResolveAll([]string{"https://example.com/a.jpg", path})
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "https://example.com/a.jpg", images[0])

	_, err = ResolveAll([]string{path, "/nonexistent/file.png"})
	assert.Error(t, err)
}
