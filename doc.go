// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package reveal implements a "hidden picture" that is uncovered tile by tile.
//
// # Overview
//
// A picture is hidden behind an opaque cover. The drawing surface is split
// into a fixed grid of tiles (2 rows by 5 columns by default) and, as the
// host reports progress, tiles are cleared in row-major order until the
// whole picture is visible.
//
// Rendering is done with github.com/gogpu/gg:
//
//	pic, _ := reveal.LoadPicture("robot.png")
//	v, _ := reveal.New(pic, reveal.WithInvalidate(window.Redraw))
//
//	v.OnSurfaceResized(500, 200)
//	v.RevealNextPiece()
//
//	dc := gg.NewContext(500, 200)
//	v.Render(dc)
//	dc.SavePNG("frame.png")
//
// # Layers
//
// Every frame is composited from back to front:
//   - backdrop fill and border
//   - the picture, scaled to the interior
//   - the mask: cover colour everywhere except revealed tiles
//   - seam outlines around revealed tiles
//   - progress label and, once complete, a banner
//
// # Pure functions
//
// [ComputeGrid], [MaskSurface.Rebuild] and [Render] are pure over their
// inputs. [View] only owns the state that ties them together, so every piece
// can be tested without a window.
//
// # Threading
//
// A View is not safe for concurrent use. Hosts call every method from the
// thread that draws.
package reveal
