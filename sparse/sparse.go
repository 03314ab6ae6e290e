// Package sparse exports kergo's sparse feature representation and the
// error taxonomy shared by the dataset and model layers.
//
// This package wraps the internal implementation and exposes the types a
// consumer needs to inspect samples, build models, and classify failures:
//
//	feats, err := sparse.ParseFeature("3:0.25")
//
//	var ferr *sparse.FormatError
//	if errors.As(err, &ferr) {
//	    log.Fatalf("bad input at %s line %d", ferr.Path, ferr.Line)
//	}
package sparse

import (
	"github.com/kergo-ml/kergo/internal/sparse"
)

// Feature is a single nonzero (index, value) entry of a sample. Indices are
// 1-based.
type Feature = sparse.Feature

// FormatError reports malformed input: a bad token, a field that does not
// parse, or a truncated record. It carries the source path and, where
// applicable, the 1-based line (datasets) or field name (model files).
type FormatError = sparse.FormatError

// FileError reports a source or destination that cannot be opened, read,
// written or created. It always identifies the path.
type FileError = sparse.FileError

// Codec-level errors wrapped by FormatError.
var (
	ErrMissingSeparator = sparse.ErrMissingSeparator
	ErrBadIndex         = sparse.ErrBadIndex
	ErrBadValue         = sparse.ErrBadValue
	ErrTruncated        = sparse.ErrTruncated
)

// ParseFeature decodes one "index:value" token.
func ParseFeature(tok string) (Feature, error) {
	return sparse.ParseFeature(tok)
}

// AppendText appends the canonical "index:value" text form of f to dst.
func AppendText(dst []byte, f Feature) []byte {
	return sparse.AppendText(dst, f)
}
