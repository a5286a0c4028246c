package ingest

import (
	"errors"
	"fmt"
)

// Fatal input conditions. Each aborts the run without a result.
var (
	ErrOpen         = errors.New("io error: file couldn't be opened")
	ErrHeader       = errors.New("parsing error: couldn't parse header")
	ErrHeaderBounds = errors.New("argument error: header out of bounds")
	ErrRoadLine     = errors.New("parsing error: unexpected char stray")
)

// LineError locates a fatal parse failure in the input.
type LineError struct {
	Line int    // 1-based, the header is line 1
	Text string // Raw line content
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v - %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
