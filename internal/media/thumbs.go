// Package media serves resized product images. Missing or unreadable
// sources degrade to generated placeholder art instead of failing.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"

	"horadevestirse.ar/storefront/internal/placeholder"
)

// Sizes lists the square edge lengths the thumbnail endpoint accepts.
var Sizes = []int{64, 128, 320, 640, 960}

const maxCacheEntries = 256

// ErrInvalidSize is returned for sizes outside Sizes.
var ErrInvalidSize = errors.New("media: unsupported thumbnail size")

// Thumb is an encoded thumbnail.
type Thumb struct {
	Data        []byte
	ContentType string
	// Fallback is set when the placeholder replaced the source image.
	Fallback bool
}

// Thumbnailer resizes images under Root and memoizes the encoded output.
type Thumbnailer struct {
	root string

	mu    sync.RWMutex
	cache map[string]Thumb
}

// NewThumbnailer serves images from the public directory root.
func NewThumbnailer(root string) *Thumbnailer {
	return &Thumbnailer{root: root, cache: make(map[string]Thumb)}
}

// ValidSize reports whether size is one of Sizes.
func ValidSize(size int) bool {
	for _, s := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// Thumbnail returns src (a site-relative path such as /products/x.png)
// center-cropped to size x size. Only an invalid size is an error.
func (t *Thumbnailer) Thumbnail(src string, size int) (Thumb, error) {
	if !ValidSize(size) {
		return Thumb{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	key := fmt.Sprintf("%d:%s", size, src)
	t.mu.RLock()
	cached, ok := t.cache[key]
	t.mu.RUnlock()
	if ok {
		return cached, nil
	}

	thumb, err := t.render(src, size)
	if err != nil {
		thumb, err = placeholderThumb(src, size)
		if err != nil {
			return Thumb{}, err
		}
	}

	t.mu.Lock()
	if len(t.cache) >= maxCacheEntries {
		for k := range t.cache {
			delete(t.cache, k)
			break
		}
	}
	t.cache[key] = thumb
	t.mu.Unlock()
	return thumb, nil
}

func (t *Thumbnailer) render(src string, size int) (Thumb, error) {
	file, err := t.resolve(src)
	if err != nil {
		return Thumb{}, err
	}
	img, err := imaging.Open(file, imaging.AutoOrientation(true))
	if err != nil {
		return Thumb{}, err
	}
	out := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)

	format, contentType := imaging.JPEG, "image/jpeg"
	if strings.EqualFold(filepath.Ext(file), ".png") {
		format, contentType = imaging.PNG, "image/png"
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, format, imaging.JPEGQuality(80)); err != nil {
		return Thumb{}, err
	}
	return Thumb{Data: buf.Bytes(), ContentType: contentType}, nil
}

// resolve maps a site path onto the public directory, refusing escapes.
func (t *Thumbnailer) resolve(src string) (string, error) {
	clean := path.Clean("/" + strings.TrimSpace(src))
	if clean == "/" || strings.Contains(src, "..") {
		return "", fmt.Errorf("media: invalid source %q", src)
	}
	return filepath.Join(t.root, filepath.FromSlash(clean)), nil
}

func placeholderThumb(seed string, size int) (Thumb, error) {
	var buf bytes.Buffer
	if err := placeholder.New(seed).PNG(&buf, size); err != nil {
		return Thumb{}, fmt.Errorf("media: placeholder: %w", err)
	}
	return Thumb{Data: buf.Bytes(), ContentType: "image/png", Fallback: true}, nil
}

// URL is the thumbnail endpoint path for src at size.
func URL(src string, size int) string {
	if src == "" {
		return ""
	}
	return fmt.Sprintf("/media/thumb/%d/%s", size, strings.TrimPrefix(src, "/"))
}
