package export

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRecord is wrapped by every *ParseError.
	ErrBadRecord = errors.New("export: bad record")
	// ErrSchema means a snapshot was written by an incompatible version.
	ErrSchema = errors.New("export: unsupported snapshot schema")
	// ErrUnencodable means a word cannot be written in a space-separated format.
	ErrUnencodable = errors.New("export: word contains whitespace")
)

// ParseError points at the offending input line (1-based).
type ParseError struct {
	Line int
	Msg  string
	Err  error // ErrBadRecord or the wrapped cause
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

func badRecord(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...), Err: ErrBadRecord}
}
