package sparse

import (
	"fmt"
	"strconv"
	"strings"
)

// Feature is a single nonzero entry of a sample: a 1-based dimension index
// and its value.
type Feature struct {
	Index int
	Value float64
}

// ParseFeature decodes one "index:value" token.
func ParseFeature(tok string) (Feature, error) {
	sep := strings.IndexByte(tok, ':')
	if sep < 0 {
		return Feature{}, fmt.Errorf("%w in %q", ErrMissingSeparator, tok)
	}
	idx, err := strconv.Atoi(tok[:sep])
	if err != nil || idx < 1 {
		return Feature{}, fmt.Errorf("%w: got %q", ErrBadIndex, tok[:sep])
	}
	val, err := strconv.ParseFloat(tok[sep+1:], 64)
	if err != nil {
		return Feature{}, fmt.Errorf("%w: got %q", ErrBadValue, tok[sep+1:])
	}
	return Feature{Index: idx, Value: val}, nil
}

// AppendText appends the canonical "index:value" text form of f to dst.
// The value uses the shortest decimal representation that parses back to
// the same float64, so encode/decode round-trips exactly.
func AppendText(dst []byte, f Feature) []byte {
	dst = strconv.AppendInt(dst, int64(f.Index), 10)
	dst = append(dst, ':')
	return strconv.AppendFloat(dst, f.Value, 'g', -1, 64)
}

// String encodes the feature in its canonical text form.
func (f Feature) String() string {
	return string(AppendText(nil, f))
}
