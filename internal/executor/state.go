package executor

import (
	"fmt"

	"github.com/vk/taskflowgo/internal/task"
)

// runState tracks one run's progress as three disjoint, monotonically
// growing sets over the task-name universe. A name enters exactly one of
// completed/failed exactly once and never leaves. In concurrent mode the
// state is owned by the single engine goroutine; workers report back over a
// channel and never touch it.
type runState struct {
	completed map[string]task.Outcome
	failed    map[string]error
	submitted map[string]struct{}
}

func newRunState(size int) *runState {
	return &runState{
		completed: make(map[string]task.Outcome, size),
		failed:    make(map[string]error),
		submitted: make(map[string]struct{}),
	}
}

// resolved returns how many tasks have reached a terminal state.
func (st *runState) resolved() int {
	return len(st.completed) + len(st.failed)
}

// record moves a task into completed or failed based on its outcome.
func (st *runState) record(name string, out task.Outcome) {
	if out.OK() {
		st.completed[name] = out
		return
	}
	st.failed[name] = out.Err()
}

// propagate marks a task failed because an upstream dependency failed,
// without the task ever being invoked.
func (st *runState) propagate(name, dependency string) {
	st.failed[name] = fmt.Errorf("skipped due to upstream failure of %q", dependency)
}

// failedDependency returns the first declared dependency that ended up in
// the failed set, if any.
func (st *runState) failedDependency(spec *task.Spec) (string, bool) {
	for _, dep := range spec.Dependencies {
		if _, failed := st.failed[dep.TaskName]; failed {
			return dep.TaskName, true
		}
	}
	return "", false
}

// dependenciesMet reports whether every declared dependency completed
// successfully.
func (st *runState) dependenciesMet(spec *task.Spec) bool {
	for _, dep := range spec.Dependencies {
		if _, ok := st.completed[dep.TaskName]; !ok {
			return false
		}
	}
	return true
}

// report snapshots the final state into an immutable Report.
func (st *runState) report() *Report {
	completed := make(map[string]task.Outcome, len(st.completed))
	for name, out := range st.completed {
		completed[name] = out
	}
	failed := make(map[string]error, len(st.failed))
	for name, err := range st.failed {
		failed[name] = err
	}
	return &Report{completed: completed, failed: failed}
}
