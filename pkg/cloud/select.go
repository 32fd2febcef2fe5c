// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cloud

import (
	"slices"

	"github.com/charmbracelet/log"
)

// Selection is the top N entries ranked by ByFrequency together with
// the counts of its first and last entries.
type Selection struct {
	Entries      []Entry
	MaxFrequency int
	MinFrequency int
}

// Len returns the number of selected entries.
func (s Selection) Len() int {
	return len(s.Entries)
}

// ValidateSize checks n against the number of distinct words.
func ValidateSize(n, distinct int) error {
	if distinct == 0 {
		return ErrEmptyInput
	}
	if n < 1 || n > distinct {
		return &SizeError{Requested: n, Available: distinct}
	}
	return nil
}

// SelectTopN ranks freqs and keeps the first n entries.
// The cutoff is positional: entries tied with the last kept count but
// ranked after position n are not selected.
func SelectTopN(freqs map[string]int, n int) (Selection, error) {
	if err := ValidateSize(n, len(freqs)); err != nil {
		return Selection{}, err
	}

	ranked := Entries(freqs)
	slices.SortFunc(ranked, ByFrequency)
	ranked = slices.Clip(ranked[:n])

	sel := Selection{
		Entries:      ranked,
		MaxFrequency: ranked[0].Count,
		MinFrequency: ranked[n-1].Count,
	}
	log.Debugf("Selected top %d of %d words: max=[%d], min=[%d]", n, len(freqs), sel.MaxFrequency, sel.MinFrequency)
	return sel, nil
}
