package claw

import (
	"errors"
	"fmt"
)

// ErrOverflow reports a value that does not fit in an int64.
var ErrOverflow = errors.New("int64 overflow")

// FormatError reports a line that does not hold exactly two integers.
type FormatError struct {
	Line   string
	Field  string // "X" or "Y" when a number failed to parse
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s in %q: %s", e.Field, e.Line, e.Reason)
	}
	return fmt.Sprintf("invalid format %q: %s", e.Line, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }

// MissingLineError reports a block that ended before the Label line.
type MissingLineError struct {
	Label string
}

func (e *MissingLineError) Error() string {
	return fmt.Sprintf("missing line for %s", e.Label)
}

// TooManyLinesError reports a block with more than three non-empty lines.
type TooManyLinesError struct {
	Count int
}

func (e *TooManyLinesError) Error() string {
	return fmt.Sprintf("too many lines in block: got %d, want %d", e.Count, blockLines)
}
