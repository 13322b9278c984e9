// Package delay provides a runner that waits for a configured duration,
// useful for demonstrating and testing concurrent scheduling.
package delay

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/taskflowgo/internal/ctxlog"
	"github.com/vk/taskflowgo/internal/registry"
	"github.com/vk/taskflowgo/internal/task"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnRunDelay is the body of the 'delay' runner. Its "duration" argument
// accepts any time.ParseDuration spelling, e.g. "250ms".
func OnRunDelay(ctx context.Context, call task.Args) (any, error) {
	raw, ok := call.Named["duration"].(string)
	if !ok || raw == "" {
		return nil, fmt.Errorf("delay: 'duration' argument is required")
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return nil, fmt.Errorf("delay: %w", err)
	}

	ctxlog.FromContext(ctx).Info("Delaying.", "duration", d.String())
	select {
	case <-time.After(d):
		return d.String(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Register registers the runner with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRunner("delay", OnRunDelay)
}
