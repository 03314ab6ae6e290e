// Package output persists prediction scores produced by a predictor.
//
// The format is plain text, one floating-point value per line, matching the
// order of the input dataset's samples.
package output

import (
	"io"

	"github.com/kergo-ml/kergo/internal/output"
)

// Write writes one prediction per line to w, in order.
func Write(w io.Writer, preds []float64) error {
	return output.Write(w, preds)
}

// WriteFile creates path and writes the predictions to it. A destination
// that cannot be created or written fails with *sparse.FileError.
func WriteFile(path string, preds []float64) error {
	return output.WriteFile(path, preds)
}
