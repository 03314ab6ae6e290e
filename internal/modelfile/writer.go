package modelfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kergo-ml/kergo/internal/sparse"
)

// Store writes m to w in the fixed-order record layout described in the
// package documentation.
func Store(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	var buf []byte

	buf = strconv.AppendInt(buf, int64(m.kernel), 10)
	buf = append(buf, '\n')

	buf = strconv.AppendInt(buf, int64(len(m.hyper)), 10)
	for _, h := range m.hyper {
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, h, 'g', -1, 64)
	}
	buf = append(buf, '\n')

	buf = strconv.AppendFloat(buf, m.bias, 'g', -1, 64)
	buf = append(buf, '\n')

	buf = strconv.AppendInt(buf, int64(m.Len()), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(m.NElem()), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(m.MaxDim()), 10)
	buf = append(buf, '\n')

	if _, err := bw.Write(buf); err != nil {
		return fmt.Errorf("write model header: %w", err)
	}

	for i := 0; i < m.Len(); i++ {
		buf = buf[:0]
		feats := m.Vector(i)
		buf = strconv.AppendInt(buf, int64(len(feats)), 10)
		for _, f := range feats {
			buf = append(buf, ' ')
			buf = sparse.AppendText(buf, f)
		}
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, m.weights[i], 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("write support vector %d: %w", i, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush model record: %w", err)
	}
	return nil
}

// StoreFile writes m to a new file at path. The file is created, written
// and closed within this call; on any failure the partial file is removed
// and a *sparse.FileError identifies the path.
func StoreFile(path string, m *Model) error {
	f, err := os.Create(path)
	if err != nil {
		return &sparse.FileError{Path: path, Op: "create", Err: err}
	}

	if err := Store(f, m); err != nil {
		f.Close()
		os.Remove(path)
		return &sparse.FileError{Path: path, Op: "write", Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return &sparse.FileError{Path: path, Op: "close", Err: err}
	}
	return nil
}
