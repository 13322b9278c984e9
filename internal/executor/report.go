package executor

import (
	"sort"

	"github.com/vk/taskflowgo/internal/task"
)

// Report is the immutable summary of one run: which tasks succeeded (with
// their outcomes) and which failed (with their captured or propagation
// errors). Every task of the graph appears in exactly one of the two sets.
type Report struct {
	completed map[string]task.Outcome
	failed    map[string]error
}

// Len returns the total number of resolved tasks.
func (r *Report) Len() int {
	return len(r.completed) + len(r.failed)
}

// Result returns the success value of the named task, and whether the task
// succeeded.
func (r *Report) Result(name string) (any, bool) {
	out, ok := r.completed[name]
	if !ok {
		return nil, false
	}
	return out.Value(), true
}

// Err returns the captured error of the named failed task, or nil when the
// task did not fail.
func (r *Report) Err(name string) error {
	return r.failed[name]
}

// CompletedNames returns the names of all succeeded tasks, sorted.
func (r *Report) CompletedNames() []string {
	names := make([]string, 0, len(r.completed))
	for name := range r.completed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FailedNames returns the names of all failed tasks (direct and propagated),
// sorted.
func (r *Report) FailedNames() []string {
	names := make([]string, 0, len(r.failed))
	for name := range r.failed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
