// Package task defines the format-agnostic building blocks of a pipeline:
// the immutable Spec describing one unit of work, the Dependency edge that
// wires a producer's result into a consumer's arguments, and the Outcome of
// one execution attempt. The dag and executor packages consume these types;
// nothing in this package executes anything.
package task
