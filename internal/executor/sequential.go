package executor

import "context"

// runSequential walks the topological order exactly once. Because every
// ancestor is resolved before its dependents are visited, a single pass both
// propagates failures and guarantees that all dependencies of an invoked
// task are already in the completed set.
func (e *Executor) runSequential(ctx context.Context, state *runState) {
	for _, spec := range e.graph.Tasks() {
		if dep, bad := state.failedDependency(spec); bad {
			state.propagate(spec.Name, dep)
			continue
		}
		args := e.buildArgs(spec, state.completed)
		state.record(spec.Name, e.execute(ctx, spec, args))
	}
}
