package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/taskflowgo/internal/ctxlog"
	"github.com/vk/taskflowgo/internal/dag"
	"github.com/vk/taskflowgo/internal/task"
)

// Executor runs a validated graph. It holds no per-run state, so one
// Executor may serve any number of runs; each Run call works on a fresh
// runState and yields a fresh Report.
type Executor struct {
	graph *dag.Graph
}

// New creates an Executor for the given graph.
func New(graph *dag.Graph) *Executor {
	return &Executor{graph: graph}
}

// Run executes the graph with the selected strategy and returns the final
// Report. Task-level errors never surface here; they are recorded in the
// Report and propagated to dependents as data. The only error Run returns
// is a *StallError from the concurrent engine.
func (e *Executor) Run(ctx context.Context, opts Options) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	state := newRunState(e.graph.Len())
	logger.Debug("Executor starting run.", "mode", opts.Mode.String(), "tasks", e.graph.Len(), "workers", workers)

	switch opts.Mode {
	case Concurrent:
		if err := e.runConcurrent(ctx, state, workers); err != nil {
			return nil, err
		}
	default:
		e.runSequential(ctx, state)
	}

	logger.Debug("Executor run finished.", "completed", len(state.completed), "failed", len(state.failed))
	return state.report(), nil
}

// buildArgs assembles the per-invocation argument bundle from the spec's
// immutable base arguments plus injected dependency results. The bundle is
// a fresh value every time; the spec is never written to.
func (e *Executor) buildArgs(spec *task.Spec, completed map[string]task.Outcome) task.Args {
	positional := make([]any, 0, len(spec.Args)+len(spec.Dependencies))
	positional = append(positional, spec.Args...)

	named := make(map[string]any, len(spec.Kwargs)+len(spec.Dependencies))
	for key, value := range spec.Kwargs {
		named[key] = value
	}

	for _, dep := range spec.Dependencies {
		out, ok := completed[dep.TaskName]
		if !ok {
			// The propagation rule prevents invocation when any dependency
			// failed, so every declared dependency must be resolved here.
			panic(fmt.Sprintf("executor: dependency %q of task %q has no recorded outcome", dep.TaskName, spec.Name))
		}
		if dep.AsPositional {
			positional = append(positional, out.Value())
		}
		if dep.AsNamed {
			named[dep.ArgName] = out.Value()
		}
	}

	return task.Args{Positional: positional, Named: named}
}

// execute invokes one task's callable and converts the result, an error, or
// a panic into an Outcome. Sink and notifier side effects happen here, on
// the invoking goroutine.
func (e *Executor) execute(ctx context.Context, spec *task.Spec, args task.Args) task.Outcome {
	sink := spec.Sink
	if sink == nil {
		sink = task.LogSink{}
	}

	sink.Started(ctx, spec.Name)

	value, err := e.call(ctx, spec, args)
	if err != nil {
		note := e.downstreamNote(spec.Name)
		sink.Failed(ctx, spec.Name, err, note)
		e.notifyFailure(ctx, spec, err, note)
		return task.Failed(err)
	}

	sink.Succeeded(ctx, spec.Name)
	return task.Succeeded(value)
}

// call runs the callable, turning a panic into an ordinary task error.
func (e *Executor) call(ctx context.Context, spec *task.Spec, args task.Args) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = fmt.Errorf("task %q panicked: %v", spec.Name, r)
		}
	}()
	return spec.Run(ctx, args)
}

// downstreamNote describes which tasks will be skipped because this one
// failed. Empty when nothing depends on the task.
func (e *Executor) downstreamNote(name string) string {
	dependents, err := e.graph.Dependents(name)
	if err != nil || len(dependents) == 0 {
		return ""
	}
	return fmt.Sprintf("the following %d task(s) will be skipped: %s", len(dependents), strings.Join(dependents, ", "))
}

// notifyFailure delivers the failure to the spec's notifier, if any. The
// notifier is best-effort: errors are logged and swallowed, panics
// recovered, and neither ever reaches the scheduler.
func (e *Executor) notifyFailure(ctx context.Context, spec *task.Spec, taskErr error, note string) {
	if spec.Notifier == nil {
		return
	}
	logger := ctxlog.FromContext(ctx)
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Failure notifier panicked.", "task", spec.Name, "panic", r)
		}
	}()
	if err := spec.Notifier.NotifyFailure(ctx, spec.Name, taskErr, note); err != nil {
		logger.Warn("Failure notifier returned an error.", "task", spec.Name, "error", err)
	}
}
