// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bastiangx/tagcloud/pkg/cloud"
	"github.com/charmbracelet/log"
)

// ErrNoInput is returned when input ends before a prompt is answered.
var ErrNoInput = errors.New("input closed before an answer was given")

const (
	askInput    = "Please enter the name of a valid input file"
	askOutput   = "Please enter the name of a valid output file"
	askSize     = "Please enter the number of words to be included in the generated tag cloud:"
	askNumber   = "That is not a number. Please enter a whole number:"
	askSmaller  = "That number is too large. Please enter a smaller number:"
	askPositive = "That number is too small. Please enter a number of at least 1:"
)

// Prompter asks questions line by line. Questions are only printed
// when interactive is set, so piped answers stay silent.
type Prompter struct {
	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewPrompter reads answers from in and writes questions to out.
func NewPrompter(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{
		reader:      bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// Line asks question and returns the trimmed answer.
func (p *Prompter) Line(question string) (string, error) {
	if p.interactive {
		fmt.Fprintln(p.out, question)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// InputFile asks for the text file to read.
func (p *Prompter) InputFile() (string, error) {
	return p.nonEmpty(askInput)
}

// OutputFile asks for the HTML file to write.
func (p *Prompter) OutputFile() (string, error) {
	return p.nonEmpty(askOutput)
}

func (p *Prompter) nonEmpty(question string) (string, error) {
	for {
		answer, err := p.Line(question)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}
}

// Size asks for the cloud size until the answer is within [1, distinct].
func (p *Prompter) Size(distinct int) (int, error) {
	if distinct == 0 {
		return 0, cloud.ErrEmptyInput
	}

	question := askSize
	for {
		answer, err := p.Line(question)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			log.Debugf("Rejected size answer %q: %v", answer, err)
			question = askNumber
			continue
		}
		switch {
		case n > distinct:
			question = askSmaller
		case n < 1:
			question = askPositive
		default:
			return n, nil
		}
		log.Debugf("Size %d outside [1, %d]", n, distinct)
	}
}

// Reader exposes the buffered input so later readers see unconsumed lines.
func (p *Prompter) Reader() io.Reader {
	return p.reader
}
