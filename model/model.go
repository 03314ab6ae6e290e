// Package model persists trained kergo models and defines the contracts a
// trainer and predictor plug into.
//
// This package wraps the internal serializer and exports the public API for
// storing and restoring a Model:
//
//	m, err := model.ReadFile("classifier.km")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Release()
//
//	preds, err := predictor.Predict(m, data, model.ExecOptions{Threads: 8})
//
// The file layout is a fixed-order text record; see the internal modelfile
// package documentation for the exact field sequence.
package model

import (
	"io"

	"github.com/kergo-ml/kergo/dataset"
	"github.com/kergo-ml/kergo/internal/modelfile"
	"github.com/kergo-ml/kergo/sparse"
)

// Model is a trained classifier: kernel configuration, bias, and support
// vectors with their weights, backed by a model-owned feature arena.
type Model = modelfile.Model

// KernelType identifies the similarity function a model was trained with.
type KernelType = modelfile.KernelType

// Supported kernels. The numeric values are the on-disk type codes.
const (
	KernelLinear = modelfile.KernelLinear
	KernelRBF    = modelfile.KernelRBF
)

// New builds a Model from one feature list and one weight per support
// vector. Derived fields (norm cache, nElem, maxdim) are computed here.
func New(kernel KernelType, hyper []float64, bias float64, vectors [][]sparse.Feature, weights []float64) (*Model, error) {
	return modelfile.New(kernel, hyper, bias, vectors, weights)
}

// Store writes m to w in the fixed-order record layout.
func Store(w io.Writer, m *Model) error {
	return modelfile.Store(w, m)
}

// StoreFile writes m to a new file at path, removing the partial file on
// any mid-write failure.
func StoreFile(path string, m *Model) error {
	return modelfile.StoreFile(path, m)
}

// Read parses a model record from r. The squared-norm cache is recomputed
// from the loaded features, never trusted from the record.
func Read(r io.Reader) (*Model, error) {
	return modelfile.Read(r)
}

// ReadFile parses a model record from the file at path.
func ReadFile(path string) (*Model, error) {
	return modelfile.ReadFile(path)
}

// TrainOptions carries the statistical configuration of a training run. The
// kernel part is persisted inside the resulting Model; execution settings
// such as thread count deliberately live in ExecOptions instead, so the
// persisted configuration never embeds machine-specific values.
type TrainOptions struct {
	Kernel KernelType
	Hyper  []float64 // kernel hyperparameters (e.g., RBF width)
	Noise  []float64 // per-class power noise
	Eta    float64   // convergence criterion
}

// ExecOptions carries execution-only configuration, passed to trainers and
// predictors and never persisted.
type ExecOptions struct {
	Threads int
}

// Trainer turns a dataset into a trained Model. Implementations live
// outside this module; kergo only defines the structures they exchange.
type Trainer interface {
	Train(data *dataset.Dataset, opts TrainOptions, exec ExecOptions) (*Model, error)
}

// Predictor scores every sample of a dataset with a trained Model,
// returning one prediction per sample in input order.
type Predictor interface {
	Predict(m *Model, data *dataset.Dataset, exec ExecOptions) ([]float64, error)
}
