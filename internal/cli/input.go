// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package cli handles interactive prompting and the prefix explorer over counted words.
package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/tagcloud/internal/logger"
	"github.com/bastiangx/tagcloud/internal/utils"
	"github.com/bastiangx/tagcloud/pkg/cloud"
	"github.com/bastiangx/tagcloud/pkg/frequency"
	"github.com/bastiangx/tagcloud/pkg/tokenize"
	"github.com/charmbracelet/log"
)

// Explorer reads prefixes line by line and lists the most frequent
// counted words that start with each one.
type Explorer struct {
	index        *frequency.Index
	limit        int
	reader       *bufio.Reader
	log          *log.Logger
	requestCount int
}

// NewExplorer creates an explorer over index showing at most limit words per prefix.
func NewExplorer(index *frequency.Index, limit int, in io.Reader, out io.Writer) *Explorer {
	if limit < 1 {
		limit = 1
	}
	return &Explorer{
		index:  index,
		limit:  limit,
		reader: bufio.NewReader(in),
		log:    logger.NewWithConfig(out, "", log.GetLevel(), false, false, log.TextFormatter),
	}
}

// Start begins the interface loop. It returns nil once input is exhausted.
func (e *Explorer) Start() error {
	e.log.Printf("tagcloud explorer: %d words indexed", e.index.Len())
	e.log.Print("type a prefix and press Enter to see matching words (Ctrl+C to exit):")

	for {
		e.log.Print("> ")
		line, err := e.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if prefix := strings.TrimSpace(line); prefix != "" {
			e.handleInput(prefix)
		}
		if err != nil {
			e.log.Debug("Explorer input closed", "requests", e.requestCount)
			return nil
		}
	}
}

// handleInput ranks the words under prefix and prints them.
func (e *Explorer) handleInput(prefix string) {
	e.requestCount++

	if tokenize.ContainsSeparator(prefix) {
		e.log.Warnf("Prefix contains separator characters: '%s'", prefix)
		return
	}
	lowered := tokenize.Tokenize(prefix)[0]

	start := time.Now()
	subset := e.index.Subset(lowered)
	if len(subset) == 0 {
		e.log.Warnf("No words found for prefix: '%s'", prefix)
		return
	}
	sel, err := cloud.SelectTopN(subset, min(e.limit, len(subset)))
	if err != nil {
		e.log.Errorf("Selecting words for '%s': %v", prefix, err)
		return
	}
	e.log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	e.log.Printf("Found %d words for prefix '%s':", len(subset), prefix)
	for i, entry := range sel.Entries {
		e.log.Printf("%2d. %-30s (count: %8s)", i+1, entry.Word, utils.FormatWithCommas(entry.Count))
	}
}
