package boardfile

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is matched by every *LineError.
	ErrMalformedLine = errors.New("boardfile: malformed line")
	// ErrUnencodable indicates a document value the line format cannot represent.
	ErrUnencodable = errors.New("boardfile: value cannot be encoded")
)

// LineError describes one malformed input line.
type LineError struct {
	Line   int
	Text   string
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *LineError) Unwrap() error { return ErrMalformedLine }
