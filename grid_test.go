// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reveal

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeGrid_2x5(t *testing.T) {
	got := ComputeGrid(500, 200, 2, 5)

	want := []Tile{
		{0, 0, 100, 100}, {100, 0, 200, 100}, {200, 0, 300, 100}, {300, 0, 400, 100}, {400, 0, 500, 100},
		{0, 100, 100, 200}, {100, 100, 200, 200}, {200, 100, 300, 200}, {300, 100, 400, 200}, {400, 100, 500, 200},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeGrid(500, 200, 2, 5) mismatch (-want +got):\n%s", diff)
	}

	for i, tile := range got {
		if tile.Width() != 100 || tile.Height() != 100 {
			t.Errorf("tile %d is %vx%v, want 100x100", i, tile.Width(), tile.Height())
		}
	}
}

func TestComputeGrid_NotReady(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		rows, columns int
	}{
		{"zero width", 0, 200, 2, 5},
		{"zero height", 500, 0, 2, 5},
		{"negative width", -1, 200, 2, 5},
		{"negative height", 500, -10, 2, 5},
		{"both zero", 0, 0, 2, 5},
		{"no rows", 500, 200, 0, 5},
		{"no columns", 500, 200, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeGrid(tt.width, tt.height, tt.rows, tt.columns); len(got) != 0 {
				t.Errorf("ComputeGrid() = %d tiles, want 0", len(got))
			}
		})
	}
}

func TestComputeGrid_FractionalEdgesAreShared(t *testing.T) {
	grid := ComputeGrid(333, 77, 2, 5)
	if len(grid) != 10 {
		t.Fatalf("len = %d, want 10", len(grid))
	}

	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			a, b := grid[row*5+col], grid[row*5+col+1]
			if a.Right != b.Left {
				t.Errorf("row %d: tile %d right %v != tile %d left %v", row, col, a.Right, col+1, b.Left)
			}
		}
	}
	for col := 0; col < 5; col++ {
		if grid[col].Bottom != grid[5+col].Top {
			t.Errorf("column %d: rows do not meet (%v vs %v)", col, grid[col].Bottom, grid[5+col].Top)
		}
	}
	if last := grid[9]; last.Right != 333 || last.Bottom != 77 {
		t.Errorf("last tile ends at (%v, %v), want (333, 77)", last.Right, last.Bottom)
	}
}

func TestTilePixels_Partition(t *testing.T) {
	sizes := []struct{ w, h int }{
		{500, 200},
		{333, 77},
		{7, 3},
		{1, 1},
	}

	for _, sz := range sizes {
		bounds := image.Rect(0, 0, sz.w, sz.h)
		grid := ComputeGrid(float64(sz.w), float64(sz.h), DefaultRows, DefaultColumns)

		hits := make([]int, sz.w*sz.h)
		for _, tile := range grid {
			r := tile.Pixels(bounds)
			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					hits[y*sz.w+x]++
				}
			}
		}
		for i, n := range hits {
			if n != 1 {
				t.Fatalf("%dx%d: pixel (%d, %d) covered %d times, want 1", sz.w, sz.h, i%sz.w, i/sz.w, n)
			}
		}
	}
}

func TestTileContains(t *testing.T) {
	tile := Tile{Left: 100, Top: 0, Right: 200, Bottom: 100}

	tests := []struct {
		x, y float64
		want bool
	}{
		{150, 50, true},
		{100, 0, true},
		{200, 50, false},
		{150, 100, false},
		{99.9, 50, false},
	}
	for _, tt := range tests {
		if got := tile.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	if x, y := tile.Center(); x != 150 || y != 50 {
		t.Errorf("Center() = (%v, %v), want (150, 50)", x, y)
	}
}
