// Package executor runs a validated task graph. It offers two strategies:
// a fully deterministic sequential walk of the topological order, and a
// bounded worker pool that runs independent tasks concurrently. Both apply
// the same rules: a task whose dependency failed is marked failed without
// ever being invoked, dependency results are injected into freshly built
// argument bundles, and a task's own error is recorded in the run report
// rather than raised. The only run-fatal condition is a stall, which cannot
// occur against a graph the dag package accepted.
package executor
