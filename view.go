// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reveal

import (
	"slices"

	"github.com/gogpu/gg"
)

// View ties a Picture to a reveal State and keeps the grid and mask in step
// with the drawing surface.
//
// Every mutator rebuilds the mask before it returns and then requests a
// redraw, so a following Render always sees a consistent mask.
//
// View is NOT safe for concurrent use. Call every method from the thread
// that draws.
type View struct {
	picture *Picture
	state   State

	rows, columns int
	width, height int
	grid          []Tile
	mask          *MaskSurface

	theme      Theme
	fonts      *Fonts
	labels     Labels
	invalidate func()
}

// New creates a fully covered view of pic. The view is not ready to show
// the picture until OnSurfaceResized reports a positive size.
func New(pic *Picture, opts ...Option) (*View, error) {
	if pic == nil {
		return nil, ErrNilPicture
	}

	o := defaultViewOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fonts := o.fonts
	if fonts == nil {
		var err error
		if fonts, err = DefaultFonts(); err != nil {
			return nil, err
		}
	}

	return &View{
		picture:    pic,
		state:      NewState(o.rows * o.columns),
		rows:       o.rows,
		columns:    o.columns,
		theme:      o.theme,
		fonts:      fonts,
		labels:     NewLabels(o.lang),
		invalidate: o.invalidate,
	}, nil
}

// OnSurfaceResized recomputes the grid and mask for a new surface size.
// The reveal count is kept; the tiles it maps to follow the new grid.
// A non-positive size leaves the view not ready: no grid and no mask.
func (v *View) OnSurfaceResized(width, height int) {
	v.width, v.height = width, height
	v.grid = ComputeGrid(float64(width), float64(height), v.rows, v.columns)
	v.mask = NewMaskSurface(width, height, v.theme.Cover)
	v.mask.Rebuild(v.grid, v.state.Revealed())

	Logger().Debug("reveal: surface resized",
		"width", width, "height", height, "tiles", len(v.grid))
	v.requestRedraw()
}

// RevealPieces sets the number of uncovered tiles, clamped to
// [0, TotalPieces()]. Asking for fewer than are shown covers tiles again.
func (v *View) RevealPieces(n int) {
	v.state.RevealPieces(n)
	v.mask.Rebuild(v.grid, v.state.Revealed())
	v.requestRedraw()
}

// RevealNextPiece uncovers one more tile. Once the picture is complete it
// does nothing.
func (v *View) RevealNextPiece() {
	if !v.state.RevealNext() {
		return
	}
	v.mask.Rebuild(v.grid, v.state.Revealed())
	v.requestRedraw()
}

// RevealedCount returns the number of uncovered tiles.
func (v *View) RevealedCount() int { return v.state.Revealed() }

// TotalPieces returns the number of tiles in the grid layout.
func (v *View) TotalPieces() int { return v.state.Total() }

// IsComplete reports whether the whole picture is uncovered.
func (v *View) IsComplete() bool { return v.state.IsComplete() }

// Size returns the last surface size passed to OnSurfaceResized.
func (v *View) Size() (width, height int) { return v.width, v.height }

// Tiles returns a copy of the current grid. It is empty until the surface
// has a positive size.
func (v *View) Tiles() []Tile { return slices.Clone(v.grid) }

// Mask returns the current mask, or nil before the first valid resize.
func (v *View) Mask() *MaskSurface { return v.mask }

// Picture returns the hidden picture.
func (v *View) Picture() *Picture { return v.picture }

// Frame returns a snapshot of everything Render reads.
// The mask is shared, not copied.
func (v *View) Frame() Frame {
	return Frame{
		Picture:  v.picture,
		Mask:     v.mask,
		Grid:     v.grid,
		Revealed: v.state.Revealed(),
		Total:    v.state.Total(),
		Theme:    v.theme,
		Fonts:    v.fonts,
		Labels:   v.labels,
	}
}

// Render draws the current frame onto dc. It does not change the view.
func (v *View) Render(dc *gg.Context) {
	Render(dc, v.Frame())
}

func (v *View) requestRedraw() {
	if v.invalidate != nil {
		v.invalidate()
	}
}
