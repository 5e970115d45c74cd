// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reveal

import "golang.org/x/text/language"

// Option configures a View during creation.
//
// Example:
//
//	// Default 2x5 grid, English labels
//	v, err := reveal.New(pic)
//
//	// 3x4 grid that asks the host window for a redraw
//	v, err := reveal.New(pic,
//	    reveal.WithGrid(3, 4),
//	    reveal.WithInvalidate(win.RequestRedraw),
//	)
type Option func(*viewOptions)

type viewOptions struct {
	rows, columns int
	theme         Theme
	fonts         *Fonts
	lang          language.Tag
	invalidate    func()
}

func defaultViewOptions() viewOptions {
	return viewOptions{
		rows:    DefaultRows,
		columns: DefaultColumns,
		theme:   DefaultTheme(),
		fonts:   nil, // DefaultFonts() if nil
		lang:    language.English,
	}
}

// WithGrid sets the tile layout. Values below 1 are raised to 1.
func WithGrid(rows, columns int) Option {
	return func(o *viewOptions) {
		o.rows = max(rows, 1)
		o.columns = max(columns, 1)
	}
}

// WithTheme replaces the default colours and metrics.
func WithTheme(t Theme) Option {
	return func(o *viewOptions) {
		o.theme = t
	}
}

// WithFonts sets the label and banner faces instead of the built-in Go fonts.
func WithFonts(f *Fonts) Option {
	return func(o *viewOptions) {
		o.fonts = f
	}
}

// WithLanguage selects the label language. See NewLabels.
func WithLanguage(tag language.Tag) Option {
	return func(o *viewOptions) {
		o.lang = tag
	}
}

// WithInvalidate registers fn to be called whenever the view needs to be
// drawn again. The view only requests a redraw; scheduling is up to the host.
func WithInvalidate(fn func()) Option {
	return func(o *viewOptions) {
		o.invalidate = fn
	}
}
