// Package registry maps runner type names to the Go functions that provide
// task bodies for configuration-defined pipelines. Each application instance
// owns its own Registry; there is no process-global registration.
package registry

import (
	"fmt"
	"sort"

	"github.com/vk/taskflowgo/internal/task"
)

// Module is the interface that runner modules implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the registered runners for a single application instance.
type Registry struct {
	runners map[string]task.Func
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{runners: make(map[string]task.Func)}
}

// RegisterRunner registers fn as the body provider for the given runner
// type. Registering the same type twice is a programmer error.
func (r *Registry) RegisterRunner(runnerType string, fn task.Func) {
	if _, exists := r.runners[runnerType]; exists {
		panic(fmt.Sprintf("registry: runner type %q registered twice", runnerType))
	}
	r.runners[runnerType] = fn
}

// Runner looks up the body provider for a runner type.
func (r *Registry) Runner(runnerType string) (task.Func, bool) {
	fn, ok := r.runners[runnerType]
	return fn, ok
}

// RunnerTypes returns the registered type names, sorted.
func (r *Registry) RunnerTypes() []string {
	types := make([]string, 0, len(r.runners))
	for t := range r.runners {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
