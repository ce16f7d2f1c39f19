package merge

import (
	"errors"
	"fmt"
)

// Causes carried by a DecodeError.
var (
	ErrNotObject        = errors.New("line is not a JSON object")
	ErrMissingTimestamp = errors.New("timestamp field is missing")
	ErrTimestampType    = errors.New("timestamp must be a JSON number or string")
)

// DecodeError reports an input line that could not be turned into a Record.
type DecodeError struct {
	Source string // Name of the input, usually its path.
	Line   int    // 1-based line number within the input.
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s:%d: %v", e.Source, e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IOError reports a failure to read an input or to write the output.
type IOError struct {
	Op     string // open, read, write, flush, close or rename
	Source string
	Err    error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
