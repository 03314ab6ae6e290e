// Package output persists prediction scores: plain text, one value per
// line, in the order of the input dataset's samples.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kergo-ml/kergo/internal/sparse"
)

// Write writes one canonical decimal value per line to w, in order. Nothing
// is written beyond the len(preds) lines.
func Write(w io.Writer, preds []float64) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for i, p := range preds {
		buf = strconv.AppendFloat(buf[:0], p, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("write prediction %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush predictions: %w", err)
	}
	return nil
}

// WriteFile creates path and writes the predictions to it. The destination
// is acquired and released within this call; any failure to create or write
// is a *sparse.FileError identifying the path.
func WriteFile(path string, preds []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return &sparse.FileError{Path: path, Op: "create", Err: err}
	}

	if err := Write(f, preds); err != nil {
		f.Close()
		return &sparse.FileError{Path: path, Op: "write", Err: err}
	}
	if err := f.Close(); err != nil {
		return &sparse.FileError{Path: path, Op: "close", Err: err}
	}
	return nil
}
