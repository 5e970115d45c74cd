// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reveal

import "github.com/gogpu/gg"

// Theme holds the colours and metrics used to draw a frame.
// Lengths are in surface pixels.
type Theme struct {
	Backdrop gg.RGBA // behind everything
	Cover    gg.RGBA // hidden tiles
	Border   gg.RGBA
	Seam     gg.RGBA // outline around revealed tiles
	Text     gg.RGBA
	Shadow   gg.RGBA
	Banner   gg.RGBA

	BorderInset  float64
	BorderWidth  float64
	PictureInset float64
	SeamWidth    float64
	ShadowOffset float64

	// ProgressBaseline is measured up from the bottom edge,
	// BannerBaseline down from the top edge.
	ProgressBaseline float64
	BannerBaseline   float64
}

// DefaultTheme returns the standard look: a grey cover over a pale
// backdrop with green accents.
func DefaultTheme() Theme {
	return Theme{
		Backdrop: gg.Hex("#E8EAF6"),
		Cover:    gg.Hex("#BDBDBD"),
		Border:   gg.Hex("#4CAF50"),
		Seam:     gg.Hex("#4CAF5096"),
		Text:     gg.White,
		Shadow:   gg.Black,
		Banner:   gg.Hex("#FFD700"),

		BorderInset:  5,
		BorderWidth:  6,
		PictureInset: 10,
		SeamWidth:    3,
		ShadowOffset: 2,

		ProgressBaseline: 30,
		BannerBaseline:   50,
	}
}
