// Package sparse provides the sparse feature representation shared by the
// dataset and model layers of kergo.
//
// A sample is a list of (index, value) features. Features for a whole
// collection live in one Arena: a single growable buffer plus a per-row
// (offset, count) span table. Rows never hold raw pointers into the buffer,
// so growing the buffer cannot dangle them, and the buffer, span table and
// any derived caches are released together as one unit.
//
// The text form of a feature is the classic svmlight token:
//
//	<index>:<value>
//
// with a 1-based positive integer index and a decimal floating-point value.
package sparse
