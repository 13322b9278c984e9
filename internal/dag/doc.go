// Package dag builds a validated, topologically ordered dependency graph
// from a set of task specs. Construction fails fast on the first structural
// error (duplicate name, missing dependency, cycle); a successfully built
// Graph is immutable and safe for concurrent reads, and may be executed any
// number of times by the executor package.
package dag
