// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reveal

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	progressKey = "Image: %d/%d"
	completeKey = "IMAGE COMPLETE!"
)

// supportedLanguages lists the label translations; the first is the fallback.
var supportedLanguages = []language.Tag{language.English, language.Spanish}

var labelCatalog = func() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	_ = b.SetString(language.English, progressKey, "Image: %d/%d")
	_ = b.SetString(language.English, completeKey, "IMAGE COMPLETE!")
	_ = b.SetString(language.Spanish, progressKey, "Imagen: %d/%d")
	_ = b.SetString(language.Spanish, completeKey, "¡IMAGEN COMPLETA!")
	return b
}()

var labelMatcher = language.NewMatcher(supportedLanguages)

// Labels formats the text drawn on a frame.
type Labels struct {
	printer *message.Printer
}

// NewLabels returns labels in the closest supported language to tag.
// Unsupported languages get English.
func NewLabels(tag language.Tag) Labels {
	_, i, _ := labelMatcher.Match(tag)
	return Labels{
		printer: message.NewPrinter(supportedLanguages[i], message.Catalog(labelCatalog)),
	}
}

// Progress formats the "revealed/total" label.
func (l Labels) Progress(revealed, total int) string {
	return l.get().Sprintf(progressKey, revealed, total)
}

// Complete returns the completion banner text.
func (l Labels) Complete() string {
	return l.get().Sprintf(completeKey)
}

// get falls back to English for the zero Labels.
func (l Labels) get() *message.Printer {
	if l.printer == nil {
		return englishLabels.printer
	}
	return l.printer
}

var englishLabels = NewLabels(language.English)
