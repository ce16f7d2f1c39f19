package merge

import (
	"bufio"
	"io"
)

// Sink receives merged records in emission order.
type Sink interface {
	Write(rec Record) error
}

// LineSink writes each record's raw bytes followed by a newline.
// Flush must be called once the merge is done.
type LineSink struct {
	name    string
	w       *bufio.Writer
	written int
}

// NewLineSink returns a buffered Sink over w.
func NewLineSink(name string, w io.Writer) *LineSink {
	return &LineSink{name: name, w: bufio.NewWriterSize(w, 64*1024)}
}

func (s *LineSink) Write(rec Record) error {
	if _, err := s.w.Write(rec.Raw); err != nil {
		return &IOError{Op: "write", Source: s.name, Err: err}
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return &IOError{Op: "write", Source: s.name, Err: err}
	}
	s.written++
	return nil
}

// Flush writes any buffered records to the underlying writer.
func (s *LineSink) Flush() error {
	if err := s.w.Flush(); err != nil {
		return &IOError{Op: "flush", Source: s.name, Err: err}
	}
	return nil
}

// Written returns how many records have been accepted.
func (s *LineSink) Written() int { return s.written }
