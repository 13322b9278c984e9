package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/taskflowgo/internal/ctxlog"
	"github.com/vk/taskflowgo/internal/dag"
	"github.com/vk/taskflowgo/internal/executor"
	"github.com/vk/taskflowgo/internal/notify"
	"github.com/vk/taskflowgo/internal/task"
)

// autoModeThreshold is the task count at or above which "auto" mode picks
// concurrent execution.
const autoModeThreshold = 10

// Run executes the loaded pipeline and returns an error when any task
// failed or when the run could not be carried out at all.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	specs, err := a.buildSpecs(appConfig)
	if err != nil {
		return err
	}

	graph, err := dag.New(specs)
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}
	a.logger.Debug("Dependency graph built.", "task_count", graph.Len())

	if graph.Len() == 0 {
		a.logger.Warn("No tasks found in pipeline, execution not required.")
		return nil
	}

	opts := a.runOptions(appConfig, graph.Len())
	a.logger.Info("🚀 Starting execution...", "mode", opts.Mode.String(), "workers", opts.Workers)

	report, err := executor.New(graph).Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("🏁 Execution finished.", "completed", len(report.CompletedNames()), "failed", len(report.FailedNames()))

	if failed := report.FailedNames(); len(failed) > 0 {
		for _, name := range failed {
			a.logger.Error("Task did not complete.", "task", name, "error", report.Err(name))
		}
		return fmt.Errorf("run finished with %d failed task(s): %s", len(failed), strings.Join(failed, ", "))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// buildSpecs resolves the loaded model against the runner registry into
// executable task specs.
func (a *App) buildSpecs(appConfig *Config) ([]*task.Spec, error) {
	var notifier task.Notifier
	if appConfig.WebhookURL != "" {
		notifier = notify.NewWebhook(appConfig.WebhookURL)
	}

	specs := make([]*task.Spec, 0, len(a.model.Tasks))
	for _, t := range a.model.Tasks {
		fn, ok := a.registry.Runner(t.RunnerType)
		if !ok {
			return nil, fmt.Errorf("task %q uses unknown runner type %q (registered: %s)",
				t.Name, t.RunnerType, strings.Join(a.registry.RunnerTypes(), ", "))
		}

		spec := &task.Spec{
			Name:     t.Name,
			Run:      fn,
			Args:     t.Positional,
			Kwargs:   t.Arguments,
			Notifier: notifier,
		}
		for _, dep := range t.Dependencies {
			spec.Dependencies = append(spec.Dependencies, task.Dependency{
				TaskName:     dep.Task,
				AsPositional: dep.AsArg,
				AsNamed:      dep.AsNamed != "",
				ArgName:      dep.AsNamed,
			})
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// runOptions maps the user-facing mode string onto executor options. "auto"
// mirrors the historical behavior of enabling concurrency only for larger
// pipelines.
func (a *App) runOptions(appConfig *Config, taskCount int) executor.Options {
	mode := executor.Sequential
	switch appConfig.Mode {
	case "concurrent":
		mode = executor.Concurrent
	case "auto":
		if taskCount >= autoModeThreshold {
			mode = executor.Concurrent
		}
	}
	return executor.Options{Mode: mode, Workers: appConfig.WorkerCount}
}
