// Package modelfile persists trained kernel-classifier models.
//
// The model file is a plain-text record of whitespace-separated fields in a
// fixed order. There are no self-describing tags: producer and consumer
// agree on the exact sequence.
//
//	Record layout:
//	  [kernel type code: 0=linear, 1=rbf]
//	  [hyperparameter count] [hyperparameter values...]
//	  [bias]
//	  [support vector count] [nElem] [maxdim]
//	  per support vector:
//	    [feature count] [index:value tokens...] [weight]
//
// The canonical writer puts each scalar group and each support vector on
// its own line; the reader splits on any whitespace and is insensitive to
// layout. Floating-point values use the shortest decimal form that parses
// back to the same float64, so store → read → store is byte-identical.
//
// The per-vector squared-norm cache is never persisted: Read recomputes it
// from the loaded features, so the cache cannot drift even if the file was
// edited by hand. nElem and maxdim are persisted but verified against the
// loaded features; a mismatch fails the read.
package modelfile
