// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/tagcloud/internal/logger"
	"github.com/bastiangx/tagcloud/pkg/cloud"
	"github.com/bastiangx/tagcloud/pkg/config"
	"github.com/bastiangx/tagcloud/pkg/frequency"
	"github.com/bastiangx/tagcloud/pkg/tokenize"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles cloud requests over msgpack IPC.
type Server struct {
	config   *config.Config
	decoder  *msgpack.Decoder
	writer   *bufio.Writer
	encoder  *msgpack.Encoder
	log      *log.Logger
	requests int
}

// NewServer creates a server using stdin/stdout for IPC.
func NewServer(cfg *config.Config) *Server {
	return NewServerWithIO(cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w.
func NewServerWithIO(cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bw := bufio.NewWriter(w)
	return &Server{
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		writer:  bw,
		encoder: msgpack.NewEncoder(bw),
		log:     logger.New("ipc"),
	}
}

// Start processes requests until the input is closed.
func (s *Server) Start() error {
	s.log.Debug("Starting server")
	s.send(StatusResponse{Status: "ready"})

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Input closed", "requests", s.requests)
				return nil
			}
			s.sendError("", "invalid msgpack request", 400)
			return fmt.Errorf("failed to decode request: %w", err)
		}
		s.requests++

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			s.log.Debugf("Rejected request frame: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			continue
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches on the request action.
func (s *Server) handleRequest(req Request) {
	switch req.Action {
	case "", ActionCloud:
		s.handleCloud(req)
	case ActionHealth:
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), 400)
	}
}

// handleCloud counts the request text and answers with the rendered selection.
func (s *Server) handleCloud(req Request) {
	if len(req.Text) > s.config.Server.MaxTextBytes {
		s.sendError(req.ID, fmt.Sprintf("text exceeds %d bytes", s.config.Server.MaxTextBytes), 413)
		return
	}
	if req.Size > s.config.Server.MaxWords {
		s.sendError(req.ID, fmt.Sprintf("n exceeds server limit of %d words", s.config.Server.MaxWords), 413)
		return
	}

	start := time.Now()
	counter := frequency.NewCounter()
	counter.AddAll(tokenize.Words(req.Text))
	freqs := counter.Freeze()
	if req.Prefix != "" {
		if tokenize.ContainsSeparator(req.Prefix) {
			s.sendError(req.ID, "prefix must be a single word", 400)
			return
		}
		freqs = frequency.NewIndex(freqs).Subset(tokenize.Tokenize(req.Prefix)[0])
	}

	sel, err := cloud.SelectTopN(freqs, req.Size)
	if err != nil {
		s.log.Debug("Rejected cloud request", "id", req.ID, "err", err)
		s.sendError(req.ID, err.Error(), 400)
		return
	}
	rendered := cloud.RenderAlphabeticalWithFonts(sel, s.config.Fonts())
	elapsed := time.Since(start)

	words := make([]CloudWord, len(rendered))
	for i, w := range rendered {
		words[i] = CloudWord{Word: w.Word, Count: w.Count, FontSize: w.FontSize}
	}
	s.log.Debugf("Took [ %v ] for request '%s'", elapsed, req.ID)

	s.send(CloudResponse{
		ID:           req.ID,
		Words:        words,
		MaxFrequency: sel.MaxFrequency,
		MinFrequency: sel.MinFrequency,
		Count:        len(words),
		TimeTaken:    elapsed.Microseconds(),
	})
}

// send encodes one response and flushes it.
func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		if _, isErr := response.(ErrorResponse); isErr {
			return
		}
		response = ErrorResponse{Error: "internal server error", Code: 500}
		if err := s.encoder.Encode(response); err != nil {
			s.log.Errorf("Encoding error response: %v", err)
			return
		}
	}
	if err := s.writer.Flush(); err != nil {
		s.log.Errorf("Writing response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
