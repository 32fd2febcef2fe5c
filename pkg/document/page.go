// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package document

import (
	"fmt"
	"html"

	"github.com/bastiangx/tagcloud/pkg/cloud"
)

// DefaultStylesheet provides the f11..f48 font classes.
const DefaultStylesheet = "http://web.cse.ohio-state.edu/software/2231/web-sw2/assignments/projects/tag-cloud-generator/data/tagcloud.css"

// Page frames rendered words in a static HTML document.
type Page struct {
	Location   string
	Size       int
	Stylesheet string
}

// Title is shown in both the head and the heading.
func (p Page) Title() string {
	return fmt.Sprintf("Top %d words in %s", p.Size, p.Location)
}

// Write emits the header, one span per word and the footer.
func (p Page) Write(out LineWriter, words []cloud.RenderedWord) error {
	lines := make([]string, 0, len(words)+14)
	lines = append(lines, p.header()...)
	for _, w := range words {
		lines = append(lines, Span(w))
	}
	lines = append(lines, footer...)

	for _, line := range lines {
		if err := out.WriteLine(line); err != nil {
			return fmt.Errorf("failed to write page: %w", err)
		}
	}
	return nil
}

func (p Page) header() []string {
	stylesheet := p.Stylesheet
	if stylesheet == "" {
		stylesheet = DefaultStylesheet
	}
	title := html.EscapeString(p.Title())
	return []string{
		"<html>",
		"<head>",
		"<title>" + title + "</title>",
		`<link href="` + html.EscapeString(stylesheet) + `" rel="stylesheet" type="text/css">`,
		"</head>",
		"<body>",
		"<h2>" + title + "</h2>",
		"<hr>",
		`<div class="cdiv">`,
		`<p class="cbox">`,
	}
}

var footer = []string{
	"</p>",
	"</div>",
	"</body>",
	"</html>",
}

// Span renders one word as a font classed element.
func Span(w cloud.RenderedWord) string {
	return fmt.Sprintf(`<span style="cursor:default" class="f%d" title="count: %d">%s</span>`,
		w.FontSize, w.Count, html.EscapeString(w.Word))
}
