package config

import "context"

// Model is the unified, format-agnostic representation of a pipeline
// definition.
type Model struct {
	Tasks []*Task
}

// Task is the format-agnostic representation of one `task` block: which
// runner executes it, its arguments, and its declared dependencies.
type Task struct {
	// RunnerType names the registered runner that provides the task's body.
	RunnerType string
	// Name uniquely identifies the task within the pipeline.
	Name string
	// Arguments are the named arguments handed to the runner.
	Arguments map[string]any
	// Positional are the ordered positional arguments handed to the runner.
	Positional []any
	// Dependencies are the declared edges, in order.
	Dependencies []*Dependency
}

// Dependency is the format-agnostic representation of a `dependency` block.
type Dependency struct {
	// Task names the producer task.
	Task string
	// AsArg appends the producer's result as a trailing positional argument.
	AsArg bool
	// AsNamed, when non-empty, injects the producer's result under this
	// named-argument key.
	AsNamed string
}

// Loader is the interface for a format-specific configuration loader. A
// path may be a single file or a directory to scan for files of the
// loader's format.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}
