package stream

import (
	"context"
	"io"
)

type lineOrErr struct {
	line string
	err  error
}

// ChanReader is the asynchronous line source: a goroutine pumps lines
// from an underlying reader into a channel, so the producer can run
// ahead of the consumer (a serial port keeps delivering while a slow
// decoder catches up). It implements LineReader; ReadLineContext adds
// cancellation.
type ChanReader struct {
	ch   chan lineOrErr
	done bool
}

// NewChanReader starts pumping src into a channel holding up to buffer
// lines. The pump goroutine exits on the first error from src,
// including io.EOF.
func NewChanReader(src LineReader, buffer int) *ChanReader {
	c := &ChanReader{ch: make(chan lineOrErr, buffer)}
	go func() {
		defer close(c.ch)
		for {
			line, err := src.ReadLine()
			if err != nil {
				c.ch <- lineOrErr{err: err}
				return
			}
			c.ch <- lineOrErr{line: line}
		}
	}()
	return c
}

// ReadLine implements LineReader.
func (c *ChanReader) ReadLine() (string, error) {
	if c.done {
		return "", io.EOF
	}
	r, ok := <-c.ch
	if !ok {
		c.done = true
		return "", io.EOF
	}
	if r.err != nil {
		c.done = true
		return "", r.err
	}
	return r.line, nil
}

// ReadLineContext is ReadLine with cancellation: it returns early with
// ctx.Err() when the context ends before a line arrives.
func (c *ChanReader) ReadLineContext(ctx context.Context) (string, error) {
	if c.done {
		return "", io.EOF
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-c.ch:
		if !ok {
			c.done = true
			return "", io.EOF
		}
		if r.err != nil {
			c.done = true
			return "", r.err
		}
		return r.line, nil
	}
}

// ReadLines implements LineReader.
func (c *ChanReader) ReadLines(count int) ([]string, error) {
	lines := make([]string, 0, count)
	for i := 0; i < count; i++ {
		line, err := c.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
