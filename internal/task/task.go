package task

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// Args is the per-invocation argument bundle handed to a task's callable.
// It is built freshly for every invocation from the Spec's base arguments
// plus any injected dependency results, and is never shared between
// invocations or written back into the Spec.
type Args struct {
	// Positional holds the ordered positional values: the Spec's base Args
	// followed by injected dependency results in edge-declaration order.
	Positional []any
	// Named holds the named values: a copy of the Spec's base Kwargs with
	// injected dependency results merged on top.
	Named map[string]any
}

// Func is the callable body of a task. It receives the freshly built
// argument bundle and returns either a result value or an error. A returned
// error marks the task failed without aborting the run.
type Func func(ctx context.Context, call Args) (any, error)

// Dependency declares that a task runs after a producer task and,
// optionally, consumes its result.
type Dependency struct {
	// TaskName is the name of the producer task.
	TaskName string
	// AsPositional appends the producer's result as one additional trailing
	// positional argument.
	AsPositional bool
	// AsNamed adds (or overrides) the named argument ArgName with the
	// producer's result. ArgName must be non-empty when AsNamed is set.
	AsNamed bool
	// ArgName is the named-argument key used when AsNamed is set.
	ArgName string
}

// Spec is the immutable description of one unit of work. It is created by
// the caller, validated once at graph construction, and read-only afterwards:
// the engine never mutates a Spec across runs.
type Spec struct {
	// Name uniquely identifies the task within a graph. It must be non-empty
	// and contain no whitespace.
	Name string
	// Run is the task's callable body.
	Run Func
	// Args are the base positional arguments.
	Args []any
	// Kwargs are the base named arguments.
	Kwargs map[string]any
	// Dependencies are the declared edges, in order. Injected positional
	// results follow this order.
	Dependencies []Dependency

	// Sink receives start/finish events for this task's invocations. When
	// nil, events go to the logger carried in the invocation context.
	Sink EventSink
	// Notifier, when set, is invoked on invocation failure. It is
	// best-effort: its errors and panics never reach the scheduler.
	Notifier Notifier
}

// Validate checks the Spec's own structural invariants. Graph-wide
// invariants (name uniqueness, dependency existence, acyclicity) are
// checked by the dag package.
func (s *Spec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("task name must not be empty")
	}
	if strings.IndexFunc(s.Name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("task name must not contain whitespace: %q", s.Name)
	}
	if s.Run == nil {
		return fmt.Errorf("task %q has no callable", s.Name)
	}
	seen := make(map[string]struct{}, len(s.Dependencies))
	for _, dep := range s.Dependencies {
		if dep.TaskName == s.Name {
			return fmt.Errorf("task %q depends on itself", s.Name)
		}
		if _, dup := seen[dep.TaskName]; dup {
			return fmt.Errorf("task %q declares duplicate dependency on %q", s.Name, dep.TaskName)
		}
		seen[dep.TaskName] = struct{}{}
		if dep.AsNamed && dep.ArgName == "" {
			return fmt.Errorf("task %q: named injection from %q requires an argument name", s.Name, dep.TaskName)
		}
	}
	return nil
}

// DependencyNames returns the producer names of the Spec's edges, in
// declaration order.
func (s *Spec) DependencyNames() []string {
	if len(s.Dependencies) == 0 {
		return nil
	}
	names := make([]string, len(s.Dependencies))
	for i, dep := range s.Dependencies {
		names[i] = dep.TaskName
	}
	return names
}
