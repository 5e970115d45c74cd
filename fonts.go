// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reveal

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Default text sizes in points.
const (
	DefaultProgressSize = 28
	DefaultBannerSize   = 36
)

// Fonts holds the faces used for the progress label and completion banner.
// A nil face disables that piece of text.
type Fonts struct {
	Progress text.Face
	Banner   text.Face
}

// NewFonts parses two TrueType/OpenType fonts and sizes them.
func NewFonts(progressTTF []byte, progressSize float64, bannerTTF []byte, bannerSize float64) (*Fonts, error) {
	progress, err := text.NewFontSource(progressTTF)
	if err != nil {
		return nil, fmt.Errorf("reveal: progress font: %w", err)
	}
	banner, err := text.NewFontSource(bannerTTF)
	if err != nil {
		return nil, fmt.Errorf("reveal: banner font: %w", err)
	}
	return &Fonts{
		Progress: progress.Face(progressSize),
		Banner:   banner.Face(bannerSize),
	}, nil
}

// DefaultFonts returns Go Regular for the label and Go Bold for the banner.
// The fonts are parsed once and shared.
func DefaultFonts() (*Fonts, error) {
	return defaultFonts()
}

var defaultFonts = sync.OnceValues(func() (*Fonts, error) {
	return NewFonts(goregular.TTF, DefaultProgressSize, gobold.TTF, DefaultBannerSize)
})
