package sparse

import (
	"errors"
	"fmt"
)

// Codec-level errors.
var (
	ErrMissingSeparator = errors.New("missing ':' separator")
	ErrBadIndex         = errors.New("feature index must be a positive integer")
	ErrBadValue         = errors.New("feature value is not a number")
	ErrTruncated        = errors.New("unexpected end of input")
)

// FormatError reports malformed input while parsing a dataset or model file.
// Line is 1-based and set for line-oriented sources (datasets); Field names
// the offending record field for token-stream sources (model files).
type FormatError struct {
	Path  string // source path, empty for in-memory readers
	Line  int    // 1-based line number, 0 if not applicable
	Field string // record field name, empty if not applicable
	Err   error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	case e.Path != "" && e.Field != "":
		return fmt.Sprintf("%s: field %s: %v", e.Path, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("field %s: %v", e.Field, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	default:
		return e.Err.Error()
	}
}

// Unwrap returns the underlying cause.
func (e *FormatError) Unwrap() error { return e.Err }

// FileError reports a failure to open, read, write or create a source or
// destination file. It always identifies the path involved.
type FileError struct {
	Path string
	Op   string // "open", "create", "read", "write", "close"
	Err  error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FileError) Unwrap() error { return e.Err }
