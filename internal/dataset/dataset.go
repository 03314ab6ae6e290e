// Package dataset loads svmlight-format training data into an immutable
// in-memory Dataset suitable for kernel computation.
//
// A Dataset is built in full from a complete source: loading either succeeds
// and returns a frozen, read-only value, or fails and returns nothing. Once
// loaded it may be read from any number of goroutines without locking; no
// code may mutate it.
package dataset

import "github.com/kergo-ml/kergo/internal/sparse"

// Dataset is an ordered collection of samples. Features live in one shared
// arena; labels (if any) and the per-sample squared-norm cache are owned by
// the Dataset and released together with the arena.
type Dataset struct {
	arena        sparse.Arena
	labels       []float64
	norms        []float64
	labeled      bool
	sparseLayout bool
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return d.arena.Len() }

// Labeled reports whether every sample carries a target label.
func (d *Dataset) Labeled() bool { return d.labeled }

// Sparse reports whether samples use compressed (index, value) storage
// rather than a dense positional layout. Loaded datasets are always sparse;
// the flag is part of the contract with collaborators that densify.
func (d *Dataset) Sparse() bool { return d.sparseLayout }

// MaxDim returns the largest feature index across all samples, or 0 for an
// empty Dataset.
func (d *Dataset) MaxDim() int { return d.arena.MaxDim() }

// NumFeatures returns the total number of stored features.
func (d *Dataset) NumFeatures() int { return d.arena.NumFeatures() }

// Sample returns sample i's features. The slice aliases the shared arena
// and must be treated as read-only.
func (d *Dataset) Sample(i int) []sparse.Feature { return d.arena.Row(i) }

// Label returns sample i's target. Valid only when Labeled is true.
func (d *Dataset) Label(i int) float64 { return d.labels[i] }

// Labels returns the per-sample targets, or nil for unlabeled data. The
// slice must be treated as read-only.
func (d *Dataset) Labels() []float64 { return d.labels }

// SquaredNorm returns the precomputed sum of squared feature values of
// sample i.
func (d *Dataset) SquaredNorm(i int) float64 { return d.norms[i] }

// SquaredNorms returns the per-sample norm cache. Read-only.
func (d *Dataset) SquaredNorms() []float64 { return d.norms }

// Release frees the feature arena, span table, labels and norm cache as one
// unit. The Dataset must not be accessed afterward; a second Release is a
// no-op.
func (d *Dataset) Release() {
	d.arena.Release()
	d.labels = nil
	d.norms = nil
	d.labeled = false
}
