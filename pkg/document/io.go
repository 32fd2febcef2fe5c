// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package document

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Source supplies the full text of one input.
type Source interface {
	// Name identifies the input in page titles and logs.
	Name() string
	// ReadAll returns the complete text content.
	ReadAll() (string, error)
}

// LineWriter appends lines to a growing document.
type LineWriter interface {
	WriteLine(line string) error
}

// FileSource reads text from a file on disk.
type FileSource struct {
	Path string
}

// Name returns the file path.
func (f FileSource) Name() string { return f.Path }

// ReadAll reads the whole file.
func (f FileSource) ReadAll() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", f.Path, err)
	}
	return string(data), nil
}

// StringSource serves text held in memory.
type StringSource struct {
	Label string
	Text  string
}

// Name returns the label.
func (s StringSource) Name() string { return s.Label }

// ReadAll returns the held text.
func (s StringSource) ReadAll() (string, error) { return s.Text, nil }

// BufferedLineWriter writes newline terminated lines through a buffer.
type BufferedLineWriter struct {
	w      *bufio.Writer
	closer io.Closer
}

// NewLineWriter wraps w. Call Flush when done.
func NewLineWriter(w io.Writer) *BufferedLineWriter {
	return &BufferedLineWriter{w: bufio.NewWriter(w)}
}

// CreateFile truncates or creates path for writing lines.
func CreateFile(path string) (*BufferedLineWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	return &BufferedLineWriter{w: bufio.NewWriter(file), closer: file}, nil
}

// WriteLine buffers line followed by a newline.
func (b *BufferedLineWriter) WriteLine(line string) error {
	if _, err := b.w.WriteString(line); err != nil {
		return err
	}
	return b.w.WriteByte('\n')
}

// Flush writes any buffered lines.
func (b *BufferedLineWriter) Flush() error {
	return b.w.Flush()
}

// Close flushes and closes the underlying file, if any.
func (b *BufferedLineWriter) Close() error {
	err := b.Flush()
	if b.closer != nil {
		if cerr := b.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
