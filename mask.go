// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reveal

import (
	"github.com/gogpu/gg"
)

// newBlitBuf allocates the composite buffer; tests replace it.
var newBlitBuf = gg.NewImageBuf

// MaskSurface is the off-screen "cover with holes" layer.
// Hidden tiles are painted with the cover colour; revealed tiles are fully
// transparent so the picture beneath shows through when composited.
//
// The pixmap is the source of truth. A blit buffer mirrors it so Render can
// composite without converting on every frame.
type MaskSurface struct {
	pixmap *gg.Pixmap
	blit   *gg.ImageBuf
	cover  gg.RGBA
}

// NewMaskSurface creates a fully covered mask of the given size.
// It returns nil when either dimension is non-positive or the buffer
// cannot be allocated.
func NewMaskSurface(width, height int, cover gg.RGBA) *MaskSurface {
	if width <= 0 || height <= 0 {
		return nil
	}
	blit, err := newBlitBuf(width, height, gg.FormatRGBA8)
	if err != nil {
		Logger().Warn("reveal: mask allocation failed",
			"width", width, "height", height, "err", err)
		return nil
	}
	m := &MaskSurface{
		pixmap: gg.NewPixmap(width, height),
		blit:   blit,
		cover:  cover,
	}
	m.pixmap.Clear(cover)
	m.sync()
	return m
}

// Rebuild repaints the mask from scratch: a clean cover fill, then the first
// min(revealed, len(grid)) tiles are alpha-erased.
//
// An empty grid or a nil mask leaves everything untouched; that is the state
// before the host has assigned a surface size.
func (m *MaskSurface) Rebuild(grid []Tile, revealed int) {
	if m == nil || len(grid) == 0 {
		return
	}

	m.pixmap.Clear(m.cover)

	n := min(revealed, len(grid))
	for i := 0; i < n; i++ {
		m.erase(grid[i])
	}
	m.sync()

	Logger().Debug("reveal: mask rebuilt",
		"width", m.pixmap.Width(),
		"height", m.pixmap.Height(),
		"revealed", max(n, 0),
		"tiles", len(grid))
}

// erase clears every channel of the tile's pixels, alpha included.
func (m *MaskSurface) erase(t Tile) {
	r := t.Pixels(m.pixmap.Bounds())
	if r.Empty() {
		return
	}
	data := m.pixmap.Data()
	stride := m.pixmap.Width() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := data[y*stride+r.Min.X*4 : y*stride+r.Max.X*4]
		clear(row)
	}
}

// sync copies the pixmap into the blit buffer.
func (m *MaskSurface) sync() {
	src := m.pixmap.Data()
	rowLen := m.pixmap.Width() * 4
	if m.blit.Stride() == rowLen {
		copy(m.blit.Data(), src)
	} else {
		for y := 0; y < m.pixmap.Height(); y++ {
			copy(m.blit.RowBytes(y), src[y*rowLen:(y+1)*rowLen])
		}
	}
	m.blit.InvalidatePremulCache()
}

// Size returns the mask dimensions, or (0, 0) for a nil mask.
func (m *MaskSurface) Size() (width, height int) {
	if m == nil {
		return 0, 0
	}
	return m.pixmap.Width(), m.pixmap.Height()
}

// Cover returns the colour used for hidden tiles, or zero for a nil mask.
func (m *MaskSurface) Cover() gg.RGBA {
	if m == nil {
		return gg.RGBA{}
	}
	return m.cover
}

// Pixmap returns the underlying pixel buffer, or nil for a nil mask.
// Callers must not modify it.
func (m *MaskSurface) Pixmap() *gg.Pixmap {
	if m == nil {
		return nil
	}
	return m.pixmap
}

// At returns the mask colour at pixel (x, y). A nil mask reads as
// transparent.
func (m *MaskSurface) At(x, y int) gg.RGBA {
	if m == nil {
		return gg.RGBA{}
	}
	return m.pixmap.GetPixel(x, y)
}

// IsTransparent reports whether pixel (x, y) has been erased.
// Pixels outside the mask, and every pixel of a nil mask, report false.
func (m *MaskSurface) IsTransparent(x, y int) bool {
	if m == nil {
		return false
	}
	if x < 0 || y < 0 || x >= m.pixmap.Width() || y >= m.pixmap.Height() {
		return false
	}
	i := (y*m.pixmap.Width() + x) * 4
	px := m.pixmap.Data()[i : i+4]
	return px[0] == 0 && px[1] == 0 && px[2] == 0 && px[3] == 0
}

// blitImage returns the buffer composited by Render.
func (m *MaskSurface) blitImage() *gg.ImageBuf { return m.blit }
