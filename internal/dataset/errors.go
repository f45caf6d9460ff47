package dataset

import (
	"fmt"
)

// NotFoundError indicates the input path does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file %s not found", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// IOError indicates the input exists but could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError indicates a malformed row. Line is 1-based; Column is 1-based
// and zero when the whole row is at fault (e.g., wrong field count).
type ParseError struct {
	Path   string
	Line   int
	Column int
	Value  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("parse %s: line %d, column %d: %s (%q)", e.Path, e.Line, e.Column, e.Reason, e.Value)
	}
	return fmt.Sprintf("parse %s: line %d: %s", e.Path, e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }
