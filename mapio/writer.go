package mapio

import (
	"bufio"
	"io"

	"github.com/katalvlaran/fognav/mission"
)

// EventWriter buffers event lines. Call Flush when done.
type EventWriter struct {
	bw *bufio.Writer
}

// NewEventWriter wraps w.
func NewEventWriter(w io.Writer) *EventWriter {
	return &EventWriter{bw: bufio.NewWriter(w)}
}

// Write appends one event line. Its signature fits mission.WithSink.
func (w *EventWriter) Write(ev mission.Event) error {
	if _, err := w.bw.WriteString(ev.String()); err != nil {
		return err
	}

	return w.bw.WriteByte('\n')
}

// Flush writes any buffered lines to the underlying writer.
func (w *EventWriter) Flush() error {
	return w.bw.Flush()
}
