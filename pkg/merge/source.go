package merge

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Source is a forward-only sequence of records in non-decreasing timestamp
// order. Next returns ok == false with a nil error once the sequence is
// exhausted.
type Source interface {
	Next() (rec Record, ok bool, err error)
}

// LineSource reads newline-delimited JSON objects from a reader, one line
// at a time. Whitespace-only lines are skipped.
type LineSource struct {
	name  string
	field string
	r     *bufio.Reader
	line  int
	eof   bool
}

// NewLineSource returns a Source over r. name identifies the input in
// errors and field names the timestamp key; empty means DefaultTimestampField.
func NewLineSource(name string, r io.Reader, field string) *LineSource {
	if field == "" {
		field = DefaultTimestampField
	}
	return &LineSource{
		name:  name,
		field: field,
		r:     bufio.NewReaderSize(r, 64*1024),
	}
}

// Name returns the name given to NewLineSource.
func (s *LineSource) Name() string { return s.name }

// Next decodes the next non-blank line.
func (s *LineSource) Next() (Record, bool, error) {
	for !s.eof {
		buf, err := s.r.ReadBytes('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return Record{}, false, &IOError{Op: "read", Source: s.name, Err: err}
			}
			s.eof = true
		}
		if len(buf) == 0 {
			continue
		}
		s.line++

		content := bytes.TrimRight(buf, "\r\n")
		if len(bytes.TrimSpace(content)) == 0 {
			continue
		}

		ts, err := decodeTimestamp(content, s.field)
		if err != nil {
			return Record{}, false, &DecodeError{Source: s.name, Line: s.line, Err: err}
		}
		return Record{Timestamp: ts, Raw: content, Line: s.line}, true, nil
	}
	return Record{}, false, nil
}
