// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cloud

import "slices"

const (
	DefaultMinFont = 11
	DefaultMaxFont = 48
)

// FontRange bounds the rendered font sizes.
type FontRange struct {
	Min int
	Max int
}

// DefaultFonts returns the [11, 48] range.
func DefaultFonts() FontRange {
	return FontRange{Min: DefaultMinFont, Max: DefaultMaxFont}
}

// Valid reports whether the range can scale counts.
func (f FontRange) Valid() bool {
	return f.Min >= 1 && f.Max > f.Min
}

// RenderedWord is a selected word with its computed font size.
type RenderedWord struct {
	Word     string
	Count    int
	FontSize int
}

// RenderAlphabetical orders sel by word and scales counts onto the default font range.
func RenderAlphabetical(sel Selection) []RenderedWord {
	return RenderAlphabeticalWithFonts(sel, DefaultFonts())
}

// RenderAlphabeticalWithFonts is RenderAlphabetical with a custom range.
// An invalid range falls back to the default. sel is not modified.
func RenderAlphabeticalWithFonts(sel Selection, fonts FontRange) []RenderedWord {
	if !fonts.Valid() {
		fonts = DefaultFonts()
	}

	ordered := slices.Clone(sel.Entries)
	slices.SortFunc(ordered, ByWord)

	ratio := fontRatio(sel.MaxFrequency, sel.MinFrequency, fonts)
	words := make([]RenderedWord, len(ordered))
	for i, e := range ordered {
		words[i] = RenderedWord{
			Word:     e.Word,
			Count:    e.Count,
			FontSize: (e.Count-sel.MinFrequency)/ratio + fonts.Min,
		}
	}
	return words
}

// fontRatio is the count step per font size step, never below 1.
func fontRatio(maxFreq, minFreq int, fonts FontRange) int {
	span := fonts.Max - fonts.Min
	return (maxFreq - minFreq + span) / span
}
