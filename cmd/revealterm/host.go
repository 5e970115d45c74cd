package main

import (
	"image"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	"github.com/gogpu/reveal"
	xdraw "golang.org/x/image/draw"
)

// upperHalf draws the top sample as foreground and the bottom one as
// background, giving two vertical samples per cell.
const upperHalf = '▀'

// resizeContext reallocates the frame surface; tests replace it.
var resizeContext = (*gg.Context).Resize

// host drives a View from tcell events. Every View call happens on the
// goroutine running run; the event poller only forwards events.
type host struct {
	logger *slog.Logger
	screen tcell.Screen
	chime  chime
	view   *reveal.View

	scale  int         // surface pixels per terminal column
	dc     *gg.Context // full-resolution frame
	cells  *image.RGBA // one pixel per half cell
	width  int         // terminal columns
	height int         // terminal rows
	dirty  bool
}

func newHost(logger *slog.Logger, screen tcell.Screen, scale int) (*host, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &host{
		logger: logger,
		screen: screen,
		scale:  max(scale, 1),
	}, nil
}

func (h *host) attach(v *reveal.View) {
	h.view = v
	h.resize()
}

func (h *host) markDirty() { h.dirty = true }

// resize matches the surface to the terminal. Each cell is scale pixels
// wide and 2*scale pixels tall so the picture keeps its proportions.
//
// A failed resize keeps the previous size, surface and cell buffer together.
func (h *host) resize() {
	cols, rows := h.screen.Size()
	sw, sh := cols*h.scale, rows*2*h.scale

	if sw <= 0 || sh <= 0 {
		h.width, h.height = cols, rows
		h.view.OnSurfaceResized(0, 0)
		return
	}
	if h.dc == nil {
		h.dc = gg.NewContext(sw, sh)
	} else if err := resizeContext(h.dc, sw, sh); err != nil {
		h.logger.Warn("resize surface", "cols", cols, "rows", rows, "err", err)
		return
	}
	h.width, h.height = cols, rows
	h.cells = image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	h.view.OnSurfaceResized(sw, sh)
	h.screen.Sync()
}

func (h *host) run() {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	h.draw()
	for ev := range events {
		if !h.handle(ev) {
			return
		}
		if h.dirty {
			h.draw()
		}
	}
}

// handle applies one event and reports whether to keep running.
func (h *host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return h.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		h.resize()
	}
	return true
}

func (h *host) handleRune(r rune) bool {
	before := h.view.RevealedCount()

	switch {
	case r == 'q':
		return false
	case r == ' ' || r == 'n':
		h.view.RevealNextPiece()
	case r == 'a':
		h.view.RevealPieces(h.view.TotalPieces())
	case r == 'r':
		h.view.RevealPieces(0)
	case r >= '0' && r <= '9':
		h.view.RevealPieces(int(r - '0'))
	default:
		return true
	}

	after := h.view.RevealedCount()
	h.logger.Debug("reveal", "key", string(r), "before", before, "after", after)
	switch {
	case after > before && h.view.IsComplete():
		h.chime.complete()
	case after > before:
		h.chime.piece()
	}
	return true
}

// draw renders a frame and downsamples it into half-block cells.
func (h *host) draw() {
	h.dirty = false
	if h.dc == nil || h.cells == nil {
		return
	}

	h.view.Render(h.dc)
	frame := h.dc.Image()
	xdraw.ApproxBiLinear.Scale(h.cells, h.cells.Bounds(), frame, frame.Bounds(), xdraw.Src, nil)

	for y := 0; y < h.height; y++ {
		for x := 0; x < h.width; x++ {
			top := h.cells.RGBAAt(x, 2*y)
			bottom := h.cells.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			h.screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
	h.screen.Show()
}

func (h *host) close() {
	h.chime.close()
	if h.dc != nil {
		_ = h.dc.Close()
	}
	h.screen.Fini()
}
