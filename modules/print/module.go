// Package print provides a runner that logs its arguments, mainly useful
// for smoke-testing pipeline wiring.
package print

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/taskflowgo/internal/ctxlog"
	"github.com/vk/taskflowgo/internal/registry"
	"github.com/vk/taskflowgo/internal/task"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnRunPrint is the body of the 'print' runner. It returns the rendered
// lines so dependents can consume them.
func OnRunPrint(ctx context.Context, call task.Args) (any, error) {
	ctxlog.FromContext(ctx).Info("Printing arguments.")

	var lines []string
	for i, value := range call.Positional {
		lines = append(lines, fmt.Sprintf("[%d] %v", i, value))
	}

	// Sort keys for consistent output.
	keys := make([]string, 0, len(call.Named))
	for k := range call.Named {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s = %v", k, call.Named[k]))
	}

	for _, line := range lines {
		fmt.Println("      " + line)
	}
	return lines, nil
}

// Register registers the runner with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRunner("print", OnRunPrint)
}
