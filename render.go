// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reveal

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Frame is everything Render needs to draw one pass.
// Picture, Mask and Fonts may be nil; the frame is then drawn without them.
type Frame struct {
	Picture  *Picture
	Mask     *MaskSurface
	Grid     []Tile
	Revealed int
	Total    int
	Theme    Theme
	Fonts    *Fonts
	Labels   Labels
}

// IsComplete reports whether every tile of the frame is revealed.
func (f Frame) IsComplete() bool { return f.Revealed >= f.Total }

// Render draws f onto dc. It only writes to dc, so rendering the same frame
// twice produces identical pixels.
//
// The picture and mask are composited only when both exist and the mask
// matches the size of dc; otherwise the frame is drawn as "not ready".
func Render(dc *gg.Context, f Frame) {
	w := float64(dc.Width())
	h := float64(dc.Height())
	th := f.Theme

	dc.ClearWithColor(th.Backdrop)

	strokeRect(dc, th.BorderInset, th.BorderInset, w-2*th.BorderInset, h-2*th.BorderInset,
		th.Border, th.BorderWidth)

	if f.Picture != nil && f.Mask != nil {
		if mw, mh := f.Mask.Size(); mw == dc.Width() && mh == dc.Height() {
			drawPicture(dc, f.Picture, th.PictureInset)
			dc.DrawImageEx(f.Mask.blitImage(), gg.DrawImageOptions{
				Interpolation: gg.InterpNearest,
				Opacity:       1,
				BlendMode:     gg.BlendNormal,
			})

			n := min(f.Revealed, len(f.Grid))
			for i := 0; i < n; i++ {
				t := f.Grid[i]
				strokeRect(dc, t.Left, t.Top, t.Width(), t.Height(), th.Seam, th.SeamWidth)
			}
		} else {
			Logger().Warn("reveal: mask does not match surface, skipping picture",
				"mask_width", mw, "mask_height", mh,
				"surface_width", dc.Width(), "surface_height", dc.Height())
		}
	}

	if f.Fonts == nil {
		return
	}
	drawLabel(dc, f.Fonts.Progress, f.Labels.Progress(f.Revealed, f.Total),
		w/2, h-th.ProgressBaseline, th.Text, th)
	if f.IsComplete() {
		drawLabel(dc, f.Fonts.Banner, f.Labels.Complete(),
			w/2, th.BannerBaseline, th.Banner, th)
	}
}

// drawPicture scales the picture, ignoring aspect ratio, into the surface
// inset by margin on every side.
func drawPicture(dc *gg.Context, pic *Picture, margin float64) {
	dw := float64(dc.Width()) - 2*margin
	dh := float64(dc.Height()) - 2*margin
	if dw <= 0 || dh <= 0 {
		return
	}
	dc.DrawImageEx(pic.Image(), gg.DrawImageOptions{
		X:             margin,
		Y:             margin,
		DstWidth:      dw,
		DstHeight:     dh,
		Interpolation: gg.InterpBilinear,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

func strokeRect(dc *gg.Context, x, y, w, h float64, col gg.RGBA, width float64) {
	if w <= 0 || h <= 0 {
		return
	}
	dc.SetStrokeBrush(gg.Solid(col))
	dc.SetLineWidth(width)
	dc.DrawRectangle(x, y, w, h)
	_ = dc.Stroke()
}

// drawLabel draws s horizontally centred on x with its baseline at y,
// over a drop shadow.
func drawLabel(dc *gg.Context, face text.Face, s string, x, y float64, col gg.RGBA, th Theme) {
	if face == nil || s == "" {
		return
	}
	dc.SetFont(face)

	dc.SetFillBrush(gg.Solid(th.Shadow))
	dc.DrawStringAnchored(s, x+th.ShadowOffset, y+th.ShadowOffset, 0.5, 0)

	dc.SetFillBrush(gg.Solid(col))
	dc.DrawStringAnchored(s, x, y, 0.5, 0)
}
