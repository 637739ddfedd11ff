// Package ipc frames protocol messages as newline-delimited JSON over an
// arbitrary reader/writer pair, stdio in production.
package ipc

import (
	"bufio"
	"encoding/json"
	"io"

	"go.trai.ch/zerr"

	"github.com/forgeline/tsbridge/internal/worker"
)

// maxMessageSize bounds a single request line. Payloads carry whole source
// files, so the default scanner limit is far too small.
const maxMessageSize = 64 * 1024 * 1024

// Codec reads requests and writes responses, one JSON object per line.
// It is not safe for concurrent writers; the worker's single dispatch loop
// is the only user.
type Codec struct {
	scanner *bufio.Scanner
	writer  io.Writer
}

// NewCodec frames messages over the given pair.
func NewCodec(r io.Reader, w io.Writer) *Codec {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxMessageSize)
	return &Codec{scanner: scanner, writer: w}
}

// Read returns the next request. Blank lines are skipped; io.EOF signals a
// cleanly closed channel.
func (c *Codec) Read() (worker.Request, error) {
	for c.scanner.Scan() {
		line := c.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req worker.Request
		if err := json.Unmarshal(line, &req); err != nil {
			return worker.Request{}, zerr.Wrap(err, "failed to decode request")
		}
		return req, nil
	}
	if err := c.scanner.Err(); err != nil {
		return worker.Request{}, zerr.Wrap(err, "failed to read request channel")
	}
	return worker.Request{}, io.EOF
}

// Write sends one response followed by a newline.
func (c *Codec) Write(resp worker.Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return zerr.Wrap(err, "failed to encode response")
	}
	data = append(data, '\n')
	if _, err := c.writer.Write(data); err != nil {
		return zerr.Wrap(err, "failed to write response")
	}
	return nil
}
