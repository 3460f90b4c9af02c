package view

import (
	"fmt"
	"io"
)

// Stream wraps the command output.
type Stream struct {
	Writer io.Writer
}

// NewStream creates a Stream writing to w.
func NewStream(w io.Writer) *Stream {
	return &Stream{Writer: w}
}

// Println writes arguments to the stream with a newline.
func (s *Stream) Println(args ...any) {
	fmt.Fprintln(s.Writer, args...)
}

// Printf writes formatted output to the stream.
func (s *Stream) Printf(format string, args ...any) {
	fmt.Fprintf(s.Writer, format, args...)
}
