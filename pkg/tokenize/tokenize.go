// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package tokenize splits raw text into lowercase words on a fixed separator set.
package tokenize

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separators lists every character that ends a word. Whitespace first,
// then the punctuation set.
const Separators = " \t\n\r'!~@#$%^&*()-=;:<>?.,[]{}|\""

// separatorSet is indexed by byte, all separators are ASCII.
var separatorSet = func() [128]bool {
	var set [128]bool
	for i := 0; i < len(Separators); i++ {
		set[Separators[i]] = true
	}
	return set
}()

// IsSeparator reports whether r delimits words.
func IsSeparator(r rune) bool {
	return r >= 0 && r < 128 && separatorSet[r]
}

// ContainsSeparator reports whether s holds any separator character.
func ContainsSeparator(s string) bool {
	return strings.IndexFunc(s, IsSeparator) >= 0
}

// Words returns the lowercase tokens of text as a lazy sequence.
// Every range over the result scans text from the start.
func Words(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		s := NewScanner(text)
		for s.Next() {
			if !yield(s.Token()) {
				return
			}
		}
	}
}

// Tokenize collects every token of text. Empty input yields an empty slice.
func Tokenize(text string) []string {
	tokens := make([]string, 0, len(text)/6)
	for word := range Words(text) {
		tokens = append(tokens, word)
	}
	return tokens
}

// Scanner walks text one token at a time. It cannot be rewound.
type Scanner struct {
	text  string
	pos   int
	token string
	lower cases.Caser
}

// NewScanner creates a scanner positioned before the first token of text.
func NewScanner(text string) *Scanner {
	return &Scanner{
		text:  text,
		lower: cases.Lower(language.Und),
	}
}

// Next advances to the following token and reports whether one was found.
// A run of non-separators at the very end of text is still a token.
func (s *Scanner) Next() bool {
	s.token = ""
	// skip separator run
	for s.pos < len(s.text) && s.text[s.pos] < 128 && separatorSet[s.text[s.pos]] {
		s.pos++
	}
	if s.pos >= len(s.text) {
		return false
	}
	start := s.pos
	for s.pos < len(s.text) {
		c := s.text[s.pos]
		if c < 128 && separatorSet[c] {
			break
		}
		s.pos++
	}
	s.token = s.lower.String(s.text[start:s.pos])
	return true
}

// Token returns the token found by the last call to Next.
func (s *Scanner) Token() string {
	return s.token
}
