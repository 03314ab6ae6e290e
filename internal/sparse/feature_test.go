package sparse

import (
	"errors"
	"testing"
)

// TestParseFeature verifies decoding of index:value tokens.
func TestParseFeature(t *testing.T) {
	tests := []struct {
		tok  string
		want Feature
	}{
		{"1:5", Feature{Index: 1, Value: 5}},
		{"3:2", Feature{Index: 3, Value: 2}},
		{"17:-0.25", Feature{Index: 17, Value: -0.25}},
		{"2:1e-3", Feature{Index: 2, Value: 0.001}},
	}
	for _, tt := range tests {
		got, err := ParseFeature(tt.tok)
		if err != nil {
			t.Errorf("ParseFeature(%q) failed: %v", tt.tok, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFeature(%q) = %+v, want %+v", tt.tok, got, tt.want)
		}
	}
}

// TestParseFeatureErrors verifies the failure taxonomy of the codec.
func TestParseFeatureErrors(t *testing.T) {
	tests := []struct {
		tok  string
		want error
	}{
		{"15", ErrMissingSeparator},
		{"", ErrMissingSeparator},
		{"0:1", ErrBadIndex},
		{"-3:1", ErrBadIndex},
		{"1.5:2", ErrBadIndex},
		{"x:2", ErrBadIndex},
		{":2", ErrBadIndex},
		{"1:abc", ErrBadValue},
		{"1:", ErrBadValue},
	}
	for _, tt := range tests {
		_, err := ParseFeature(tt.tok)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseFeature(%q) error = %v, want %v", tt.tok, err, tt.want)
		}
	}
}

// TestFeatureRoundTrip verifies encode/decode is exact.
func TestFeatureRoundTrip(t *testing.T) {
	feats := []Feature{
		{Index: 1, Value: 5},
		{Index: 42, Value: -1.2},
		{Index: 7, Value: 0.1},
		{Index: 9, Value: 3.141592653589793},
		{Index: 3, Value: 1e-17},
	}
	for _, f := range feats {
		got, err := ParseFeature(f.String())
		if err != nil {
			t.Fatalf("ParseFeature(%q) failed: %v", f.String(), err)
		}
		if got != f {
			t.Errorf("round trip of %+v gave %+v", f, got)
		}
	}
}
