// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reveal

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	"github.com/gogpu/gg"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Errors returned when building a Picture.
var (
	// ErrNilPicture is returned when no image is supplied.
	ErrNilPicture = errors.New("reveal: nil picture")

	// ErrEmptyPicture is returned for an image with zero width or height.
	ErrEmptyPicture = errors.New("reveal: empty picture")
)

// Picture is the hidden image. It is immutable once created.
type Picture struct {
	buf           *gg.ImageBuf
	width, height int
}

// NewPicture wraps an in-memory image.
func NewPicture(img image.Image) (*Picture, error) {
	if img == nil {
		return nil, ErrNilPicture
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyPicture, b.Dx(), b.Dy())
	}
	return &Picture{
		buf:    gg.ImageBufFromImage(img),
		width:  b.Dx(),
		height: b.Dy(),
	}, nil
}

// DecodePicture reads a PNG, JPEG, GIF, WebP, BMP or TIFF image.
func DecodePicture(r io.Reader) (*Picture, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("reveal: decode picture: %w", err)
	}
	pic, err := NewPicture(img)
	if err != nil {
		return nil, fmt.Errorf("reveal: %s picture: %w", format, err)
	}
	return pic, nil
}

// LoadPicture reads a picture from a file.
func LoadPicture(path string) (*Picture, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("reveal: open picture: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return DecodePicture(f)
}

// Size returns the picture's pixel dimensions.
func (p *Picture) Size() (width, height int) {
	return p.width, p.height
}

// Image returns the pixel buffer drawn by the renderer.
// Callers must not modify it.
func (p *Picture) Image() *gg.ImageBuf {
	return p.buf
}
