package modelfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kergo-ml/kergo/internal/sparse"
)

// Structural errors detected after the record parses.
var (
	ErrNElemMismatch  = errors.New("declared nElem does not match stored features")
	ErrMaxDimMismatch = errors.New("declared maxdim does not match stored features")
	ErrTrailingData   = errors.New("trailing data after model record")
)

// fields pulls whitespace-separated tokens off a model record in order.
// Every accessor names the field it expects so failures identify the exact
// position in the fixed layout.
type fields struct {
	sc *bufio.Scanner
}

func (fr *fields) next(field string) (string, error) {
	if fr.sc.Scan() {
		return fr.sc.Text(), nil
	}
	if err := fr.sc.Err(); err != nil {
		return "", &sparse.FileError{Op: "read", Err: err}
	}
	return "", &sparse.FormatError{Field: field, Err: sparse.ErrTruncated}
}

func (fr *fields) count(field string) (int, error) {
	tok, err := fr.next(field)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, &sparse.FormatError{
			Field: field,
			Err:   errors.New("not a non-negative integer: " + strconv.Quote(tok)),
		}
	}
	return n, nil
}

func (fr *fields) float(field string) (float64, error) {
	tok, err := fr.next(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &sparse.FormatError{
			Field: field,
			Err:   errors.New("not a number: " + strconv.Quote(tok)),
		}
	}
	return v, nil
}

// Read parses a model record from r. It fails with *sparse.FormatError on
// any field that does not parse, an unknown kernel code, a stream that ends
// before the declared number of support vectors, or declared nElem/maxdim
// that disagree with the loaded features. The squared-norm cache is always
// recomputed from the loaded features, never read from the record.
func Read(r io.Reader) (*Model, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	fr := &fields{sc: sc}

	code, err := fr.count("kernel type")
	if err != nil {
		return nil, err
	}
	kernel := KernelType(code)
	if !kernel.valid() {
		return nil, &sparse.FormatError{
			Field: "kernel type",
			Err:   fmt.Errorf("%w: code %d", ErrUnknownKernel, code),
		}
	}

	nHyper, err := fr.count("hyperparameter count")
	if err != nil {
		return nil, err
	}
	// Declared counts are untrusted input; cap preallocation and let
	// truncation errors surface while reading.
	hyper := make([]float64, 0, min(nHyper, 1024))
	for i := 0; i < nHyper; i++ {
		v, err := fr.float(fmt.Sprintf("hyperparameter %d", i))
		if err != nil {
			return nil, err
		}
		hyper = append(hyper, v)
	}

	bias, err := fr.float("bias")
	if err != nil {
		return nil, err
	}

	nSV, err := fr.count("support vector count")
	if err != nil {
		return nil, err
	}
	nElem, err := fr.count("nElem")
	if err != nil {
		return nil, err
	}
	maxDim, err := fr.count("maxdim")
	if err != nil {
		return nil, err
	}

	m := &Model{
		kernel:  kernel,
		hyper:   hyper,
		bias:    bias,
		weights: make([]float64, 0, min(nSV, 4096)),
	}
	for i := 0; i < nSV; i++ {
		field := fmt.Sprintf("support vector %d", i)
		n, err := fr.count(field + " feature count")
		if err != nil {
			return nil, err
		}
		m.arena.BeginRow()
		for j := 0; j < n; j++ {
			tok, err := fr.next(field)
			if err != nil {
				return nil, err
			}
			f, err := sparse.ParseFeature(tok)
			if err != nil {
				return nil, &sparse.FormatError{Field: field, Err: err}
			}
			m.arena.Append(f)
		}
		m.arena.EndRow()

		w, err := fr.float(field + " weight")
		if err != nil {
			return nil, err
		}
		m.weights = append(m.weights, w)
	}

	if sc.Scan() {
		return nil, &sparse.FormatError{Field: "end of record", Err: ErrTrailingData}
	}
	if err := sc.Err(); err != nil {
		return nil, &sparse.FileError{Op: "read", Err: err}
	}

	m.arena.Freeze()
	if got := m.arena.NumFeatures(); got != nElem {
		return nil, &sparse.FormatError{
			Field: "nElem",
			Err:   fmt.Errorf("%w: declared %d, stored %d", ErrNElemMismatch, nElem, got),
		}
	}
	if got := m.arena.MaxDim(); got != maxDim {
		return nil, &sparse.FormatError{
			Field: "maxdim",
			Err:   fmt.Errorf("%w: declared %d, stored %d", ErrMaxDimMismatch, maxDim, got),
		}
	}

	m.norms = m.arena.SquaredNorms()
	return m, nil
}

// ReadFile parses a model record from the file at path. A source that
// cannot be opened fails with *sparse.FileError before any parsing begins.
func ReadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &sparse.FileError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	m, err := Read(f)
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
	return m, nil
}
