// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package server implements msgpack IPC for tag cloud generation.

Clients write msgpack encoded requests to stdin and read one msgpack
response per request from stdout. Requests are handled in order, one at a time.
On start the server writes a status message:

	{"status": "ready"}

A cloud request carries the raw text and the number of words to keep:

	{"id": "req_001", "action": "cloud", "t": "the cat sat on the mat", "n": 2}

The response lists the selected words alphabetically with count and font size,
the selection bounds and the processing time in microseconds:

	{"id": "req_001", "w": [{"w": "cat", "c": 1, "f": 11}, {"w": "the", "c": 2, "f": 12}], "max": 2, "min": 1, "c": 2, "t": 41}

Setting "p" restricts counting to words starting with that prefix. An empty
action is treated as "cloud". Health checks use {"id": "h1", "action": "health"}.

Failed requests get an ErrorResponse with an HTTP style code: 400 for bad
sizes, empty input and unknown actions, 413 for requests over the configured
limits and 500 for internal failures.
*/
package server

// Request is the envelope for every client message.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Text   string `msgpack:"t,omitempty"`
	Size   int    `msgpack:"n,omitempty"`
	Prefix string `msgpack:"p,omitempty"`
}

// CloudWord is one rendered word.
type CloudWord struct {
	Word     string `msgpack:"w"`
	Count    int    `msgpack:"c"`
	FontSize int    `msgpack:"f"`
}

// CloudResponse answers a cloud request.
type CloudResponse struct {
	ID           string      `msgpack:"id"`
	Words        []CloudWord `msgpack:"w"`
	MaxFrequency int         `msgpack:"max"`
	MinFrequency int         `msgpack:"min"`
	Count        int         `msgpack:"c"`
	TimeTaken    int64       `msgpack:"t"`
}

// StatusResponse reports readiness and health.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

const (
	ActionCloud  = "cloud"
	ActionHealth = "health"
)
