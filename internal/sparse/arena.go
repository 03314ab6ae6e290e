package sparse

// Span locates one row's features inside an Arena: Off is the offset of the
// first feature, N the feature count. Spans are only ever produced by the
// arena's append API, so Off+N is always within bounds of the feature buffer.
type Span struct {
	Off int
	N   int
}

// Arena holds the features of many rows in one shared buffer with a span
// table. Rows are appended with BeginRow/Append/EndRow; once Freeze is
// called the arena no longer grows and may be read concurrently.
//
// Duplicate indices inside one row follow a last-value-wins policy: the
// earlier entry keeps its position but takes the later value.
type Arena struct {
	feats  []Feature
	spans  []Span
	maxDim int
	open   bool
	frozen bool
}

// BeginRow starts a new row. It panics if the arena is frozen or a row is
// already open; that is a programming error, not an input error.
func (a *Arena) BeginRow() {
	if a.frozen {
		panic("sparse: BeginRow on frozen arena")
	}
	if a.open {
		panic("sparse: BeginRow with a row still open")
	}
	a.open = true
	a.spans = append(a.spans, Span{Off: len(a.feats)})
}

// Append adds one feature to the open row. A duplicate of an index already
// present in the row overwrites that entry's value in place.
func (a *Arena) Append(f Feature) {
	if !a.open {
		panic("sparse: Append without an open row")
	}
	cur := &a.spans[len(a.spans)-1]
	row := a.feats[cur.Off:]
	for i := range row {
		if row[i].Index == f.Index {
			row[i].Value = f.Value
			return
		}
	}
	a.feats = append(a.feats, f)
	cur.N++
	if f.Index > a.maxDim {
		a.maxDim = f.Index
	}
}

// EndRow closes the open row. A row with zero features is valid.
func (a *Arena) EndRow() {
	if !a.open {
		panic("sparse: EndRow without an open row")
	}
	a.open = false
}

// Freeze ends construction. After Freeze the arena is immutable.
func (a *Arena) Freeze() {
	if a.open {
		panic("sparse: Freeze with a row still open")
	}
	a.frozen = true
}

// Len returns the number of rows.
func (a *Arena) Len() int { return len(a.spans) }

// NumFeatures returns the total number of stored features across all rows.
func (a *Arena) NumFeatures() int { return len(a.feats) }

// MaxDim returns the largest feature index seen, or 0 if the arena is empty.
func (a *Arena) MaxDim() int { return a.maxDim }

// Row returns row i's features as a slice into the shared buffer. The
// caller must not modify it.
func (a *Arena) Row(i int) []Feature {
	s := a.spans[i]
	return a.feats[s.Off : s.Off+s.N : s.Off+s.N]
}

// SquaredNorms computes the sum of squared feature values for every row.
// It is called once after Freeze to build the owner's norm cache.
func (a *Arena) SquaredNorms() []float64 {
	norms := make([]float64, len(a.spans))
	for i := range a.spans {
		var sum float64
		for _, f := range a.Row(i) {
			sum += f.Value * f.Value
		}
		norms[i] = sum
	}
	return norms
}

// Release drops the feature buffer and span table as one unit. The arena
// must not be used afterward; calling Release again is a no-op.
func (a *Arena) Release() {
	a.feats = nil
	a.spans = nil
	a.maxDim = 0
	a.open = false
	a.frozen = true
}
