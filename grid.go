// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reveal

import (
	"image"
	"math"
)

// Default grid layout: 2 rows of 5 tiles.
const (
	DefaultRows    = 2
	DefaultColumns = 5
)

// Tile is one axis-aligned cell of the reveal grid in surface coordinates.
// Edges are fractional; no rounding is applied so adjacent tiles share
// exactly the same edge value.
type Tile struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of the tile.
func (t Tile) Width() float64 { return t.Right - t.Left }

// Height returns the vertical extent of the tile.
func (t Tile) Height() float64 { return t.Bottom - t.Top }

// Center returns the midpoint of the tile.
func (t Tile) Center() (x, y float64) {
	return (t.Left + t.Right) / 2, (t.Top + t.Bottom) / 2
}

// Contains reports whether (x, y) lies in the half-open rectangle
// [Left, Right) x [Top, Bottom).
func (t Tile) Contains(x, y float64) bool {
	return x >= t.Left && x < t.Right && y >= t.Top && y < t.Bottom
}

// Pixels returns the pixels whose centres lie inside the tile, clipped to
// bounds. Tiles of one grid yield disjoint rectangles that together cover
// every pixel of the surface.
func (t Tile) Pixels(bounds image.Rectangle) image.Rectangle {
	r := image.Rect(
		pixelEdge(t.Left), pixelEdge(t.Top),
		pixelEdge(t.Right), pixelEdge(t.Bottom),
	)
	return r.Intersect(bounds)
}

// pixelEdge maps a fractional edge to the first pixel whose centre is at or
// beyond it.
func pixelEdge(v float64) int {
	return int(math.Ceil(v - 0.5))
}

// ComputeGrid partitions a surface into rows*columns tiles in row-major
// order: row 0 left to right, then row 1, and so on.
//
// It returns nil when either dimension is non-positive or the layout is
// empty. Callers treat an empty grid as "not ready yet".
func ComputeGrid(surfaceWidth, surfaceHeight float64, rows, columns int) []Tile {
	if surfaceWidth <= 0 || surfaceHeight <= 0 || rows < 1 || columns < 1 {
		return nil
	}

	tileW := surfaceWidth / float64(columns)
	tileH := surfaceHeight / float64(rows)

	tiles := make([]Tile, 0, rows*columns)
	for row := 0; row < rows; row++ {
		top := float64(row) * tileH
		bottom := float64(row+1) * tileH
		for col := 0; col < columns; col++ {
			tiles = append(tiles, Tile{
				Left:   float64(col) * tileW,
				Top:    top,
				Right:  float64(col+1) * tileW,
				Bottom: bottom,
			})
		}
	}
	return tiles
}
