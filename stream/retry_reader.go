package stream

import (
	"errors"
	"io"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// maxReopens bounds how many times a read error triggers a reconnect
// before the error is surfaced to the caller.
const maxReopens = 3

// OpenFunc opens (or reopens) a line source. RetryReader calls it
// under exponential backoff.
type OpenFunc func() (LineReader, error)

// RetryReader wraps a flaky line source — typically a serial port —
// and reopens it with exponential backoff when opening or reading
// fails. io.EOF is genuine end-of-stream and is never retried.
type RetryReader struct {
	open       OpenFunc
	newBackOff func() backoff.BackOff
	cur        LineReader
}

// NewRetryReader returns a RetryReader over open, using a default
// exponential backoff per connection attempt.
func NewRetryReader(open OpenFunc) *RetryReader {
	return &RetryReader{
		open: open,
		newBackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 8)
		},
	}
}

// NewRetryReaderBackOff is NewRetryReader with a custom backoff
// factory; the factory is invoked once per reconnection sequence.
func NewRetryReaderBackOff(open OpenFunc, newBackOff func() backoff.BackOff) *RetryReader {
	return &RetryReader{open: open, newBackOff: newBackOff}
}

func (r *RetryReader) connect() error {
	op := func() error {
		src, err := r.open()
		if err != nil {
			log.Warn().Err(err).Msg("opening line source failed, backing off")
			return err
		}
		r.cur = src
		return nil
	}
	return backoff.Retry(op, r.newBackOff())
}

// ReadLine implements LineReader. A transient read error closes the
// current source and reconnects; once maxReopens reconnects have each
// failed again (maxReopens+1 failed reads in one call), the last error
// is returned.
func (r *RetryReader) ReadLine() (string, error) {
	var lastErr error
	for attempt := 0; attempt <= maxReopens; attempt++ {
		if r.cur == nil {
			if err := r.connect(); err != nil {
				return "", err
			}
		}
		line, err := r.cur.ReadLine()
		if err == nil || errors.Is(err, io.EOF) {
			return line, err
		}
		log.Warn().Err(err).Msg("line source failed, reopening")
		r.cur = nil
		lastErr = err
	}
	return "", lastErr
}

// ReadLines implements LineReader.
func (r *RetryReader) ReadLines(count int) ([]string, error) {
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
