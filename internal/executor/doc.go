// Package executor runs the patch pipeline: a fixed, ordered sequence of
// operations applied to a single in-memory document. There is no
// concurrency; each operation sees the document as the previous one left
// it, and the first error aborts the run before anything is saved.
package executor
