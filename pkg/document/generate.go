// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package document reads inputs, runs the tag cloud pipeline and writes HTML pages.
package document

import (
	"fmt"

	"github.com/bastiangx/tagcloud/pkg/cloud"
	"github.com/bastiangx/tagcloud/pkg/frequency"
	"github.com/bastiangx/tagcloud/pkg/tokenize"
	"github.com/charmbracelet/log"
)

// Analysis holds the counted words of one source.
type Analysis struct {
	Location string
	Freqs    map[string]int
	Tokens   int
}

// Analyze reads src fully and counts its words.
func Analyze(src Source) (*Analysis, error) {
	text, err := src.ReadAll()
	if err != nil {
		return nil, err
	}

	counter := frequency.NewCounter()
	counter.AddAll(tokenize.Words(text))
	a := &Analysis{
		Location: src.Name(),
		Tokens:   counter.Total(),
	}
	a.Freqs = counter.Freeze()
	log.Debugf("Analyzed %s: tokens=[%d], distinct=[%d]", a.Location, a.Tokens, len(a.Freqs))
	return a, nil
}

// Distinct returns the number of distinct words.
func (a *Analysis) Distinct() int {
	return len(a.Freqs)
}

// Options control cloud size and presentation.
type Options struct {
	Size       int
	Fonts      cloud.FontRange
	Stylesheet string
}

// Report summarizes a generated page.
type Report struct {
	Location  string
	Tokens    int
	Distinct  int
	Selection cloud.Selection
	Words     []cloud.RenderedWord
}

// Write selects, renders and writes the cloud for a.
func (a *Analysis) Write(out LineWriter, opts Options) (*Report, error) {
	sel, err := cloud.SelectTopN(a.Freqs, opts.Size)
	if err != nil {
		return nil, err
	}
	words := cloud.RenderAlphabeticalWithFonts(sel, opts.Fonts)

	page := Page{Location: a.Location, Size: opts.Size, Stylesheet: opts.Stylesheet}
	if err := page.Write(out, words); err != nil {
		return nil, err
	}

	return &Report{
		Location:  a.Location,
		Tokens:    a.Tokens,
		Distinct:  a.Distinct(),
		Selection: sel,
		Words:     words,
	}, nil
}

// Generate runs the whole pipeline from src to out.
func Generate(src Source, out LineWriter, opts Options) (*Report, error) {
	a, err := Analyze(src)
	if err != nil {
		return nil, err
	}
	report, err := a.Write(out, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate cloud for %s: %w", src.Name(), err)
	}
	return report, nil
}
