package dataset

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kergo-ml/kergo/internal/sparse"
)

// maxLineSize bounds a single input line. Wide samples with tens of
// thousands of features fit comfortably; the default bufio limit does not.
const maxLineSize = 16 * 1024 * 1024

// LoadLabeled reads a labeled dataset. Each non-blank line is
//
//	<label> <index>:<value> <index>:<value> ...
//
// with whitespace-separated tokens. Blank lines are skipped. Any malformed
// token aborts the whole load with a *sparse.FormatError carrying the
// 1-based line number; no partial Dataset is returned.
func LoadLabeled(r io.Reader) (*Dataset, error) {
	return load(r, true)
}

// LoadUnlabeled reads an unlabeled dataset: the same format without the
// leading label token.
func LoadUnlabeled(r io.Reader) (*Dataset, error) {
	return load(r, false)
}

// LoadLabeledFile reads a labeled dataset from path. A source that cannot
// be opened fails with *sparse.FileError before any parsing begins.
func LoadLabeledFile(path string) (*Dataset, error) {
	return loadFile(path, true)
}

// LoadUnlabeledFile reads an unlabeled dataset from path.
func LoadUnlabeledFile(path string) (*Dataset, error) {
	return loadFile(path, false)
}

func loadFile(path string, labeled bool) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &sparse.FileError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	d, err := load(f, labeled)
	if err != nil {
		var fe *sparse.FormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		var ioe *sparse.FileError
		if errors.As(err, &ioe) {
			ioe.Path = path
		}
		return nil, err
	}
	return d, nil
}

func load(r io.Reader, labeled bool) (*Dataset, error) {
	d := &Dataset{labeled: labeled, sparseLayout: true}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)

	line := 0
	for sc.Scan() {
		line++
		tokens := strings.Fields(sc.Text())
		if len(tokens) == 0 {
			continue
		}

		if labeled {
			y, err := strconv.ParseFloat(tokens[0], 64)
			if err != nil {
				return nil, &sparse.FormatError{
					Line: line,
					Err:  errors.New("label is not a number: " + strconv.Quote(tokens[0])),
				}
			}
			d.labels = append(d.labels, y)
			tokens = tokens[1:]
		}

		d.arena.BeginRow()
		for _, tok := range tokens {
			f, err := sparse.ParseFeature(tok)
			if err != nil {
				return nil, &sparse.FormatError{Line: line, Err: err}
			}
			d.arena.Append(f)
		}
		d.arena.EndRow()
	}
	if err := sc.Err(); err != nil {
		return nil, &sparse.FileError{Op: "read", Err: err}
	}

	d.arena.Freeze()
	d.norms = d.arena.SquaredNorms()
	return d, nil
}
