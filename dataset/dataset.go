// Package dataset loads svmlight-format training data for kergo.
//
// This package wraps the internal loader and exports the public API for
// building an immutable in-memory Dataset from labeled or unlabeled text
// sources.
//
// Example usage:
//
//	data, err := dataset.LoadLabeledFile("train.dat")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer data.Release()
//
//	for i := 0; i < data.Len(); i++ {
//	    _ = data.Label(i)
//	    _ = data.Sample(i)      // []sparse.Feature
//	    _ = data.SquaredNorm(i) // cached ||x||^2
//	}
package dataset

import (
	"io"

	"github.com/kergo-ml/kergo/internal/dataset"
)

// Dataset is an immutable, fully materialized collection of samples. Its
// feature arena, span table, labels and norm cache form one ownership unit
// released together by Release.
type Dataset = dataset.Dataset

// LoadLabeled reads a labeled dataset from r. Each non-blank line is
//
//	<label> <index>:<value> <index>:<value> ...
//
// Loading is atomic: any malformed token fails the whole load with a
// *sparse.FormatError and no Dataset is returned.
func LoadLabeled(r io.Reader) (*Dataset, error) {
	return dataset.LoadLabeled(r)
}

// LoadUnlabeled reads an unlabeled dataset from r: the same format without
// the leading label token.
func LoadUnlabeled(r io.Reader) (*Dataset, error) {
	return dataset.LoadUnlabeled(r)
}

// LoadLabeledFile reads a labeled dataset from path. An unopenable source
// fails with *sparse.FileError before any parsing begins.
func LoadLabeledFile(path string) (*Dataset, error) {
	return dataset.LoadLabeledFile(path)
}

// LoadUnlabeledFile reads an unlabeled dataset from path.
func LoadUnlabeledFile(path string) (*Dataset, error) {
	return dataset.LoadUnlabeledFile(path)
}
