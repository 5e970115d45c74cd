// Command revealterm shows a hidden picture in the terminal and reveals it
// from the keyboard.
//
// Keys:
//
//	space, n   reveal the next piece
//	0-9        reveal exactly that many pieces
//	a          reveal everything
//	r          cover everything again
//	q, Esc     quit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/reveal"
	"github.com/gogpu/reveal/robot"
	"golang.org/x/text/language"
)

func main() {
	var (
		rows    = flag.Int("rows", reveal.DefaultRows, "grid rows")
		columns = flag.Int("columns", reveal.DefaultColumns, "grid columns")
		picture = flag.String("picture", "", "picture file (default: built-in robot)")
		lang    = flag.String("lang", "en", "label language (BCP 47)")
		scale   = flag.Int("scale", 8, "surface pixels per terminal column")
		mute    = flag.Bool("mute", false, "disable sound")
		logFile = flag.String("log", "", "write debug log to this file")
	)
	flag.Parse()

	logger, closeLog, err := openLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "revealterm: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	reveal.SetLogger(logger)

	if err := run(logger, *rows, *columns, *picture, *lang, *scale, *mute); err != nil {
		logger.Error("revealterm failed", "err", err)
		fmt.Fprintf(os.Stderr, "revealterm: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

func run(logger *slog.Logger, rows, columns int, picturePath, lang string, scale int, mute bool) error {
	pic, err := loadPicture(picturePath)
	if err != nil {
		return err
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("parse -lang: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	h, err := newHost(logger, screen, scale)
	if err != nil {
		return err
	}
	defer h.close()

	if !mute {
		if err := h.chime.init(); err != nil {
			// Non-fatal, the picture works without sound.
			logger.Warn("audio initialization failed", "err", err)
		}
	}

	v, err := reveal.New(pic,
		reveal.WithGrid(rows, columns),
		reveal.WithLanguage(tag),
		reveal.WithInvalidate(h.markDirty),
	)
	if err != nil {
		return err
	}
	h.attach(v)
	h.run()
	return nil
}

func loadPicture(path string) (*reveal.Picture, error) {
	if path == "" {
		return robot.New()
	}
	return reveal.LoadPicture(path)
}

// openLogger returns a silent logger unless path is set; the terminal
// itself is taken by the UI.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //nolint:gosec // user-provided path
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	var closed bool
	return logger, func() {
		if !closed {
			closed = true
			_ = f.Close()
		}
	}, nil
}
