// Package env_vars provides a runner that reads process environment
// variables into the pipeline.
package env_vars

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/taskflowgo/internal/registry"
	"github.com/vk/taskflowgo/internal/task"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnRunEnvVars is the body of the 'env_vars' runner. With a "name" argument
// it returns that variable's value (or the "default" argument when unset);
// without one it returns the full environment as a map.
func OnRunEnvVars(ctx context.Context, call task.Args) (any, error) {
	if raw, ok := call.Named["name"]; ok {
		name, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("env_vars: 'name' must be a string, got %T", raw)
		}
		if value, set := os.LookupEnv(name); set {
			return value, nil
		}
		if fallback, ok := call.Named["default"]; ok {
			return fallback, nil
		}
		return nil, fmt.Errorf("env_vars: environment variable %q is not set", name)
	}

	envMap := make(map[string]string)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			envMap[pair[0]] = pair[1]
		}
	}
	return envMap, nil
}

// Register registers the runner with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRunner("env_vars", OnRunEnvVars)
}
