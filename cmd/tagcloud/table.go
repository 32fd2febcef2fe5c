// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bastiangx/tagcloud/internal/utils"
	"github.com/bastiangx/tagcloud/pkg/document"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderSelection tabulates the ranked selection with its font sizes.
func renderSelection(report *document.Report) string {
	fonts := make(map[string]int, len(report.Words))
	for _, w := range report.Words {
		fonts[w.Word] = w.FontSize
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(fmt.Sprintf("Top %d of %s words in %s (%s tokens)",
		report.Selection.Len(),
		utils.FormatWithCommas(report.Distinct),
		report.Location,
		utils.FormatWithCommas(report.Tokens)))
	tw.AppendHeader(table.Row{"#", "Word", "Count", "Font"})

	for i, e := range report.Selection.Entries {
		tw.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			e.Word,
			utils.FormatWithCommas(e.Count),
			"f" + strconv.Itoa(fonts[e.Word]),
		})
	}
	tw.AppendFooter(table.Row{"", "max / min",
		fmt.Sprintf("%d / %d", report.Selection.MaxFrequency, report.Selection.MinFrequency), ""})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	return tw.Render()
}
