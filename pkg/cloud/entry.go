// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cloud

import (
	"cmp"
	"strings"
)

// Entry pairs a word with its number of occurrences.
type Entry struct {
	Word  string
	Count int
}

// ByFrequency orders entries by count descending, then word ascending.
func ByFrequency(a, b Entry) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return strings.Compare(a.Word, b.Word)
}

// ByWord orders entries by word ascending, then count ascending.
func ByWord(a, b Entry) int {
	if c := strings.Compare(a.Word, b.Word); c != 0 {
		return c
	}
	return cmp.Compare(a.Count, b.Count)
}

// Entries flattens freqs into an unordered slice.
func Entries(freqs map[string]int) []Entry {
	entries := make([]Entry, 0, len(freqs))
	for word, count := range freqs {
		entries = append(entries, Entry{Word: word, Count: count})
	}
	return entries
}
