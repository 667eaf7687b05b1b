// Package stream provides the line sources the dispatcher consumes.
//
// A LineReader yields one physical line at a time, trailing newline
// included — the dispatcher needs the newline preserved so multi-line
// reassembly keeps the physical line boundaries. Reader wraps any
// io.Reader with buffering; ChanReader adapts a blocking reader into a
// channel-fed asynchronous source; RetryReader reopens a flaky source
// with exponential backoff.
package stream

import (
	"bufio"
	"errors"
	"io"

	"github.com/rs/zerolog/log"
)

// LineReader yields physical lines from a byte stream. ReadLine
// returns io.EOF when the stream ends.
type LineReader interface {
	// ReadLine returns the next line including its trailing newline
	// (when the stream carries one), or io.EOF at end of stream.
	ReadLine() (string, error)

	// ReadLines reads up to count lines, stopping early without error
	// when the stream ends.
	ReadLines(count int) ([]string, error)
}

// Reader is a buffered LineReader over any io.Reader.
type Reader struct {
	inner *bufio.Reader
}

// NewReader wraps r in a buffered line reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{inner: bufio.NewReader(r)}
}

// ReadLine implements LineReader. A final line without a trailing
// newline is returned as-is; the next call reports io.EOF.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.inner.ReadString('\n')
	if len(line) > 0 {
		log.Trace().Int("bytes", len(line)).Str("line", line).Msg("read line")
		return line, nil
	}
	if err == nil {
		err = io.EOF
	}
	return "", err
}

// ReadLines implements LineReader.
func (r *Reader) ReadLines(count int) ([]string, error) {
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		line, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
