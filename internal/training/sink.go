// Package training collects the labelled statistics rows the logger bot
// emits at the end of each game.
package training

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/lox/resistancebots/internal/tracker"
)

// Sample is one labelled training row.
type Sample struct {
	Record tracker.Record
	Spy    bool
}

// Sink receives training samples. Implementations must be safe for
// concurrent use, since games of a competition run in parallel.
type Sink interface {
	Write(samples []Sample) error
}

// Discard drops every sample.
var Discard Sink = discard{}

type discard struct{}

func (discard) Write([]Sample) error { return nil }

// CSVWriter writes samples as CSV, with a header row before the first sample.
type CSVWriter struct {
	mu      sync.Mutex
	w       *csv.Writer
	closer  io.Closer
	header  bool
	written int
}

// NewCSVWriter wraps w. If w is an io.Closer it is closed by Close.
func NewCSVWriter(w io.Writer) *CSVWriter {
	c := &CSVWriter{w: csv.NewWriter(w)}
	if closer, ok := w.(io.Closer); ok {
		c.closer = closer
	}
	return c
}

// Create opens path for writing, truncating it.
func Create(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create training output: %w", err)
	}
	return NewCSVWriter(f), nil
}

// Write appends the samples and flushes them.
func (c *CSVWriter) Write(samples []Sample) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.header {
		header := append(append([]string(nil), tracker.Columns...), tracker.LabelColumn)
		if err := c.w.Write(header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		c.header = true
	}
	for _, s := range samples {
		if err := c.w.Write(s.Record.LabelledRow(s.Spy)); err != nil {
			return fmt.Errorf("failed to write sample: %w", err)
		}
		c.written++
	}
	c.w.Flush()
	return c.w.Error()
}

// Written returns the number of samples written so far.
func (c *CSVWriter) Written() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.written
}

// Close flushes and closes the underlying writer.
func (c *CSVWriter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return err
	}
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}
