package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kergo-ml/kergo/internal/sparse"
)

// TestWrite verifies the exact line format.
func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []float64{0.5, -1.2}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got, want := buf.String(), "0.5\n-1.2\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// TestWriteEmpty verifies no predictions produce an empty file.
func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

// TestWriteFile verifies the file variant end to end.
func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "predictions.txt")
	if err := WriteFile(path, []float64{0.5, -1.2}); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got, want := string(data), "0.5\n-1.2\n"; got != want {
		t.Errorf("file contents = %q, want %q", got, want)
	}
}

// TestWriteFileError verifies an uncreatable destination fails with FileError.
func TestWriteFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "predictions.txt")
	err := WriteFile(path, []float64{1})

	var ioe *sparse.FileError
	if !errors.As(err, &ioe) {
		t.Fatalf("error = %v, want *sparse.FileError", err)
	}
	if ioe.Op != "create" || ioe.Path != path {
		t.Errorf("FileError = %+v", ioe)
	}
}
