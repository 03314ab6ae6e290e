package modelfile

import (
	"errors"
	"fmt"

	"github.com/kergo-ml/kergo/internal/sparse"
)

// KernelType identifies the similarity function a model was trained with.
type KernelType int

// Supported kernels. The numeric values are the on-disk type codes.
const (
	KernelLinear KernelType = iota
	KernelRBF
)

// String returns a human-readable name for the kernel type.
func (k KernelType) String() string {
	switch k {
	case KernelLinear:
		return "linear"
	case KernelRBF:
		return "rbf"
	default:
		return "unknown"
	}
}

func (k KernelType) valid() bool {
	return k == KernelLinear || k == KernelRBF
}

// Construction errors.
var (
	ErrUnknownKernel = errors.New("unknown kernel type")
	ErrWeightCount   = errors.New("weight count does not match support vector count")
)

// Model is a trained classifier: kernel configuration, bias, and the
// retained support vectors with their weights. Support vector features live
// in a model-owned arena; the weight array, hyperparameter vector and
// squared-norm cache are co-owned with it and released together.
//
// Once constructed a Model is immutable and safe for concurrent readers.
type Model struct {
	kernel  KernelType
	hyper   []float64
	bias    float64
	arena   sparse.Arena
	weights []float64
	norms   []float64
}

// New builds a Model from its parts: one feature list and one weight per
// support vector. The feature lists are copied into the model's arena; the
// norm cache, nElem and maxdim are derived here, so the result always
// satisfies the structural invariants or New fails.
func New(kernel KernelType, hyper []float64, bias float64, vectors [][]sparse.Feature, weights []float64) (*Model, error) {
	if !kernel.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKernel, int(kernel))
	}
	if len(vectors) != len(weights) {
		return nil, fmt.Errorf("%w: %d vectors, %d weights", ErrWeightCount, len(vectors), len(weights))
	}

	m := &Model{
		kernel:  kernel,
		hyper:   append([]float64(nil), hyper...),
		bias:    bias,
		weights: append([]float64(nil), weights...),
	}
	for _, feats := range vectors {
		m.arena.BeginRow()
		for _, f := range feats {
			if f.Index < 1 {
				return nil, fmt.Errorf("%w: got %d", sparse.ErrBadIndex, f.Index)
			}
			m.arena.Append(f)
		}
		m.arena.EndRow()
	}
	m.arena.Freeze()
	m.norms = m.arena.SquaredNorms()
	return m, nil
}

// Kernel returns the kernel type.
func (m *Model) Kernel() KernelType { return m.kernel }

// Hyper returns the kernel hyperparameter vector. Read-only.
func (m *Model) Hyper() []float64 { return m.hyper }

// Bias returns the bias term of the decision function.
func (m *Model) Bias() float64 { return m.bias }

// Len returns the number of support vectors.
func (m *Model) Len() int { return m.arena.Len() }

// Vector returns support vector i's features. The slice aliases the model's
// arena and must be treated as read-only.
func (m *Model) Vector(i int) []sparse.Feature { return m.arena.Row(i) }

// Weight returns support vector i's weight.
func (m *Model) Weight(i int) float64 { return m.weights[i] }

// Weights returns the per-vector weights. Read-only.
func (m *Model) Weights() []float64 { return m.weights }

// NElem returns the total number of stored nonzero features across all
// support vectors.
func (m *Model) NElem() int { return m.arena.NumFeatures() }

// MaxDim returns the largest feature index across all support vectors, or 0
// for a model with no features.
func (m *Model) MaxDim() int { return m.arena.MaxDim() }

// SquaredNorm returns the precomputed sum of squared feature values of
// support vector i.
func (m *Model) SquaredNorm(i int) float64 { return m.norms[i] }

// SquaredNorms returns the per-vector norm cache. Read-only.
func (m *Model) SquaredNorms() []float64 { return m.norms }

// Release frees the support-vector arena, span table, weight array,
// hyperparameter vector and norm cache as one unit. The Model must not be
// accessed afterward; a second Release is a no-op.
func (m *Model) Release() {
	m.arena.Release()
	m.hyper = nil
	m.weights = nil
	m.norms = nil
}
