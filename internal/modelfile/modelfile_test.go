package modelfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kergo-ml/kergo/internal/sparse"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	m, err := New(KernelRBF, []float64{0.5}, -0.25,
		[][]sparse.Feature{
			{{Index: 1, Value: 5}, {Index: 3, Value: 2}},
			{{Index: 2, Value: 4}},
			{},
		},
		[]float64{1.5, -2, 0.125},
	)
	require.NoError(t, err)
	return m
}

func TestNewDerivedFields(t *testing.T) {
	m := testModel(t)

	assert.Equal(t, KernelRBF, m.Kernel())
	assert.Equal(t, []float64{0.5}, m.Hyper())
	assert.Equal(t, -0.25, m.Bias())
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 3, m.NElem())
	assert.Equal(t, 3, m.MaxDim())
	assert.Equal(t, []float64{29, 16, 0}, m.SquaredNorms())
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(KernelType(7), nil, 0, nil, nil)
	assert.ErrorIs(t, err, ErrUnknownKernel)

	_, err = New(KernelLinear, nil, 0,
		[][]sparse.Feature{{{Index: 1, Value: 1}}}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrWeightCount)

	_, err = New(KernelLinear, nil, 0,
		[][]sparse.Feature{{{Index: 0, Value: 1}}}, []float64{1})
	assert.ErrorIs(t, err, sparse.ErrBadIndex)
}

func TestStoreLayout(t *testing.T) {
	m := testModel(t)

	var buf bytes.Buffer
	require.NoError(t, Store(&buf, m))

	want := "1\n" + // rbf
		"1 0.5\n" +
		"-0.25\n" +
		"3 3 3\n" + // nSV nElem maxdim
		"2 1:5 3:2 1.5\n" +
		"1 2:4 -2\n" +
		"0 0.125\n"
	assert.Equal(t, want, buf.String())
}

func TestRoundTripByteIdentical(t *testing.T) {
	m := testModel(t)

	var first bytes.Buffer
	require.NoError(t, Store(&first, m))

	loaded, err := Read(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)

	var second bytes.Buffer
	require.NoError(t, Store(&second, loaded))
	assert.Equal(t, first.Bytes(), second.Bytes())

	// Non-derived fields survive unchanged; derived caches are recomputed
	// to identical values.
	assert.Equal(t, m.Kernel(), loaded.Kernel())
	assert.Equal(t, m.Hyper(), loaded.Hyper())
	assert.Equal(t, m.Bias(), loaded.Bias())
	assert.Equal(t, m.Weights(), loaded.Weights())
	assert.Equal(t, m.SquaredNorms(), loaded.SquaredNorms())
}

func TestReadLayoutInsensitive(t *testing.T) {
	// Same record as TestStoreLayout with scrambled whitespace.
	in := " 1 1 0.5 -0.25\n3 3 3 2 1:5 3:2 1.5 1\t2:4 -2 0 0.125 \n"
	m, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []float64{1.5, -2, 0.125}, m.Weights())
}

func TestReadNormsRecomputed(t *testing.T) {
	m := testModel(t)
	var buf bytes.Buffer
	require.NoError(t, Store(&buf, m))

	loaded, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, []float64{29, 16, 0}, loaded.SquaredNorms())
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"empty", "", "kernel type"},
		{"unknown kernel", "9 0 0 0 0 0\n", "kernel type"},
		{"negative hyper count", "1 -1 0 0 0 0\n", "hyperparameter count"},
		{"bad bias", "1 0 oops 0 0 0\n", "bias"},
		{"truncated header", "1 1 0.5\n", "bias"},
		{"truncated vectors", "1 0 0 2 1 1 1 1:5 2\n", "support vector 1 feature count"},
		{"bad feature", "1 0 0 1 1 1 1 1:x 2\n", "support vector 0"},
		{"missing weight", "1 0 0 1 1 1 1 1:5\n", "support vector 0 weight"},
		{"nElem mismatch", "1 0 0 1 2 1 1 1:5 2\n", "nElem"},
		{"maxdim mismatch", "1 0 0 1 1 9 1 1:5 2\n", "maxdim"},
		{"trailing data", "1 0 0 0 0 0 junk\n", "end of record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Read(strings.NewReader(tt.input))
			assert.Nil(t, m, "no partial model on failure")

			var fe *sparse.FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestStoreReadFile(t *testing.T) {
	m := testModel(t)
	path := filepath.Join(t.TempDir(), "classifier.km")

	require.NoError(t, StoreFile(path, m))

	loaded, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, m.Weights(), loaded.Weights())
	assert.Equal(t, m.NElem(), loaded.NElem())
}

func TestReadFileErrors(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.km"))
	var ioe *sparse.FileError
	require.ErrorAs(t, err, &ioe)
	assert.Equal(t, "open", ioe.Op)

	path := filepath.Join(t.TempDir(), "bad.km")
	require.NoError(t, os.WriteFile(path, []byte("9 0 0 0 0 0\n"), 0o644))
	_, err = ReadFile(path)
	var fe *sparse.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, path, fe.Path)
}

func TestStoreFileCleansUpOnFailure(t *testing.T) {
	// Creating inside a missing directory fails before anything is written.
	m := testModel(t)
	path := filepath.Join(t.TempDir(), "no-such-dir", "classifier.km")

	err := StoreFile(path, m)
	var ioe *sparse.FileError
	require.ErrorAs(t, err, &ioe)
	assert.Equal(t, "create", ioe.Op)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestModelRelease(t *testing.T) {
	m := testModel(t)
	m.Release()

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Hyper())
	assert.Nil(t, m.Weights())
	assert.Nil(t, m.SquaredNorms())
	assert.Equal(t, 0, m.NElem())

	m.Release() // second release is a no-op
}
