// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package robot draws the default hidden picture: a friendly robot.
package robot

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/reveal"
)

// Size is the width and height of the picture in pixels.
const Size = 400

// Palette.
var (
	Background = gg.Hex("#E8F5E8")
	Head       = gg.Hex("#4A90E2")
	Body       = gg.Hex("#8E7CC3")
	Gold       = gg.Hex("#D4AF37")
	Antenna    = gg.Hex("#FF6B6B")
)

// New renders the robot and wraps it as a reveal picture.
func New() (*reveal.Picture, error) {
	dc := gg.NewContext(Size, Size)
	defer func() { _ = dc.Close() }()

	Draw(dc)
	return reveal.NewPicture(dc.Image())
}

// Draw paints the robot onto dc in a Size x Size coordinate space.
func Draw(dc *gg.Context) {
	dc.ClearWithColor(Background)

	fillRounded(dc, Head, 120, 80, 160, 120, 20)  // head
	fillRounded(dc, Body, 100, 200, 200, 150, 15) // body

	// Eyes and pupils.
	fillCircle(dc, gg.White, 160, 130, 20)
	fillCircle(dc, gg.White, 240, 130, 20)
	fillCircle(dc, gg.Black, 160, 130, 10)
	fillCircle(dc, gg.Black, 240, 130, 10)

	// Smile: lower half of the ellipse inscribed in (170,140)-(230,180).
	dc.SetStrokeBrush(gg.Solid(Gold))
	dc.SetLineWidth(6)
	halfEllipse(dc, 200, 160, 30, 20)
	_ = dc.Stroke()

	// Arms and legs.
	fillRounded(dc, Head, 60, 220, 40, 60, 10)
	fillRounded(dc, Head, 300, 220, 40, 60, 10)
	fillRounded(dc, Head, 130, 350, 40, 30, 8)
	fillRounded(dc, Head, 230, 350, 40, 30, 8)

	// Central button and chest panel.
	fillCircle(dc, Gold, 200, 250, 8)
	dc.SetFillBrush(gg.Solid(Gold))
	dc.DrawRectangle(180, 280, 40, 10)
	_ = dc.Fill()

	// Antenna.
	dc.SetFillBrush(gg.Solid(Antenna))
	dc.DrawRectangle(195, 60, 10, 20)
	_ = dc.Fill()
	fillCircle(dc, Antenna, 200, 55, 8)
}

func fillRounded(dc *gg.Context, col gg.RGBA, x, y, w, h, r float64) {
	dc.SetFillBrush(gg.Solid(col))
	dc.DrawRoundedRectangle(x, y, w, h, r)
	_ = dc.Fill()
}

func fillCircle(dc *gg.Context, col gg.RGBA, x, y, r float64) {
	dc.SetFillBrush(gg.Solid(col))
	dc.DrawCircle(x, y, r)
	_ = dc.Fill()
}

// halfEllipse adds the open path from angle 0 to pi, which in y-down
// coordinates is the lower half.
func halfEllipse(dc *gg.Context, cx, cy, rx, ry float64) {
	const segments = 24
	dc.MoveTo(cx+rx, cy)
	for i := 1; i <= segments; i++ {
		a := math.Pi * float64(i) / segments
		dc.LineTo(cx+rx*math.Cos(a), cy+ry*math.Sin(a))
	}
}
