package executor

import (
	"context"
	"sync"

	"github.com/vk/taskflowgo/internal/ctxlog"
	"github.com/vk/taskflowgo/internal/task"
)

// job is one dispatched invocation. The argument bundle is built by the
// engine goroutine before submission, so workers never read run state.
type job struct {
	spec *task.Spec
	args task.Args
}

// completion is a worker's report back to the engine.
type completion struct {
	name    string
	outcome task.Outcome
}

// runConcurrent executes the graph on a fixed pool of workers goroutines.
//
// The engine goroutine owns the run state exclusively. It repeatedly scans
// the topological order for candidates (not submitted, not failed, not
// unrunnable, all dependencies completed), marks unrunnable tasks failed,
// submits every candidate, then blocks on the completion channel until at
// least one in-flight task resolves. No ordering is promised among
// concurrently-ready tasks; only dependency order is guaranteed.
func (e *Executor) runConcurrent(ctx context.Context, state *runState, workers int) error {
	logger := ctxlog.FromContext(ctx)
	tasks := e.graph.Tasks()
	total := len(tasks)

	jobs := make(chan job, total)
	results := make(chan completion, total)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := range jobs {
				results <- completion{name: j.spec.Name, outcome: e.execute(ctx, j.spec, j.args)}
			}
		}(i)
	}
	defer func() {
		close(jobs)
		wg.Wait()
	}()

	inFlight := 0
	for state.resolved() < total {
		submitted := 0
		for _, spec := range tasks {
			if _, done := state.submitted[spec.Name]; done {
				continue
			}
			if _, failed := state.failed[spec.Name]; failed {
				continue
			}
			if dep, bad := state.failedDependency(spec); bad {
				logger.Warn("Skipping task due to upstream failure.", "task", spec.Name, "dependency", dep)
				state.propagate(spec.Name, dep)
				continue
			}
			if !state.dependenciesMet(spec) {
				continue
			}
			jobs <- job{spec: spec, args: e.buildArgs(spec, state.completed)}
			state.submitted[spec.Name] = struct{}{}
			inFlight++
			submitted++
		}

		// The scan may have resolved the remaining tasks by propagation.
		if state.resolved() >= total {
			break
		}

		if inFlight == 0 && submitted == 0 {
			// A validated acyclic graph can never reach this; it means the
			// builder let an unsatisfiable dependency through.
			return &StallError{}
		}

		// Block for one completion, then drain whatever else is ready so the
		// next scan sees as much progress as possible.
		c := <-results
		inFlight--
		state.record(c.name, c.outcome)
	drain:
		for {
			select {
			case c := <-results:
				inFlight--
				state.record(c.name, c.outcome)
			default:
				break drain
			}
		}
	}

	return nil
}
