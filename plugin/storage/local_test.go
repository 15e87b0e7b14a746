package storage

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStorageUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("image upload with thumbnail", func(t *testing.T) {
		root := t.TempDir()
		s := NewLocalStorage(root)

		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 800, 600))))

		result, err := s.Upload(ctx, "baby.png", buf.Bytes())
		require.NoError(t, err)
		require.Equal(t, "image", result.Type)
		require.True(t, strings.HasPrefix(result.URL, "/file/"))
		require.True(t, strings.HasSuffix(result.URL, ".png"))

		name := strings.TrimPrefix(result.URL, "/file/")
		_, err = os.Stat(filepath.Join(root, assetsDir, name))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(root, thumbnailsDir, name))
		require.NoError(t, err)
	})

	t.Run("unknown bytes classified as raw", func(t *testing.T) {
		s := NewLocalStorage(t.TempDir())
		result, err := s.Upload(ctx, "data.bin", []byte{0x00, 0x01, 0x02, 0x03})
		require.NoError(t, err)
		require.Equal(t, "raw", result.Type)
	})

	t.Run("empty blob rejected", func(t *testing.T) {
		s := NewLocalStorage(t.TempDir())
		_, err := s.Upload(ctx, "empty.png", nil)
		require.Error(t, err)
	})
}

func TestLocalStorageOpen(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage(root)

	result, err := s.Upload(context.Background(), "note.txt", []byte("hello cradle"))
	require.NoError(t, err)

	name := strings.TrimPrefix(result.URL, "/file/")
	path, err := s.Open(name)
	require.NoError(t, err)
	require.FileExists(t, path)

	_, err = s.Open("../secret")
	require.Error(t, err)
	_, err = s.Open("missing.txt")
	require.Error(t, err)
}
