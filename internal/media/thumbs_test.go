package media

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, root string) {
	t.Helper()
	dir := filepath.Join(root, "products")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	src := imaging.New(400, 200, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	require.NoError(t, imaging.Save(src, filepath.Join(dir, "buzo.png")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "roto.png"), []byte("not an image"), 0o600))
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestThumbnailCropsSource(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root)
	th := NewThumbnailer(root)

	thumb, err := th.Thumbnail("/products/buzo.png", 128)
	require.NoError(t, err)
	require.False(t, thumb.Fallback)
	require.Equal(t, "image/png", thumb.ContentType)
	img := decode(t, thumb.Data)
	require.Equal(t, 128, img.Bounds().Dx())
	require.Equal(t, 128, img.Bounds().Dy())

	again, err := th.Thumbnail("/products/buzo.png", 128)
	require.NoError(t, err)
	require.Equal(t, thumb.Data, again.Data)
}

func TestThumbnailFallsBackToPlaceholder(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root)
	th := NewThumbnailer(root)

	for _, src := range []string{"/products/missing.png", "/products/roto.png", "/../etc/passwd", ""} {
		thumb, err := th.Thumbnail(src, 64)
		require.NoError(t, err, src)
		require.True(t, thumb.Fallback, src)
		require.Equal(t, "image/png", thumb.ContentType)
		require.Equal(t, 64, decode(t, thumb.Data).Bounds().Dx())
	}
}

func TestThumbnailRejectsUnknownSize(t *testing.T) {
	_, err := NewThumbnailer(t.TempDir()).Thumbnail("/products/buzo.png", 123)
	require.True(t, errors.Is(err, ErrInvalidSize))
}

func TestURL(t *testing.T) {
	require.Equal(t, "/media/thumb/640/products/Marco-cinnamoroll-frente.png", URL("/products/Marco-cinnamoroll-frente.png", 640))
	require.Empty(t, URL("", 640))
}
