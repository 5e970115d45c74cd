// Command revealdemo renders every reveal step of a hidden picture to PNG.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/reveal"
	"github.com/gogpu/reveal/robot"
	"golang.org/x/text/language"
)

func main() {
	var (
		width   = flag.Int("width", 500, "surface width")
		height  = flag.Int("height", 200, "surface height")
		rows    = flag.Int("rows", reveal.DefaultRows, "grid rows")
		columns = flag.Int("columns", reveal.DefaultColumns, "grid columns")
		picture = flag.String("picture", "", "picture file (default: built-in robot)")
		lang    = flag.String("lang", "en", "label language (BCP 47)")
		output  = flag.String("output", "frames", "output directory")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	reveal.SetLogger(logger)

	if err := run(logger, *width, *height, *rows, *columns, *picture, *lang, *output); err != nil {
		logger.Error("revealdemo failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, width, height, rows, columns int, picturePath, lang, output string) error {
	pic, err := loadPicture(picturePath)
	if err != nil {
		return err
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("parse -lang: %w", err)
	}

	v, err := reveal.New(pic, reveal.WithGrid(rows, columns), reveal.WithLanguage(tag))
	if err != nil {
		return err
	}
	v.OnSurfaceResized(width, height)

	if err := os.MkdirAll(output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()

	for step := 0; step <= v.TotalPieces(); step++ {
		v.RevealPieces(step)
		v.Render(dc)

		path := filepath.Join(output, fmt.Sprintf("frame_%02d.png", step))
		if err := dc.SavePNG(path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		logger.Info("frame saved", "path", path,
			"revealed", v.RevealedCount(), "total", v.TotalPieces(), "complete", v.IsComplete())
	}
	return nil
}

func loadPicture(path string) (*reveal.Picture, error) {
	if path == "" {
		return robot.New()
	}
	return reveal.LoadPicture(path)
}
