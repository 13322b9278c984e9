// Package http_request provides a runner for making individual HTTP
// requests from a pipeline.
package http_request

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vk/taskflowgo/internal/ctxlog"
	"github.com/vk/taskflowgo/internal/registry"
	"github.com/vk/taskflowgo/internal/task"
	"resty.dev/v3"
)

// Module implements the registry.Module interface for this package. It owns
// one shared HTTP client for all of the pipeline's requests.
type Module struct {
	client *resty.Client
}

// NewModule creates the module with a fresh HTTP client.
func NewModule() *Module {
	return &Module{client: resty.New()}
}

// onRunHTTPRequest is the body of the 'http_request' runner. Arguments:
// "url" (required) and "method" (optional, default GET). It returns the
// status code and body so dependents can consume them.
func (m *Module) onRunHTTPRequest(ctx context.Context, call task.Args) (any, error) {
	rawURL, ok := call.Named["url"].(string)
	if !ok || rawURL == "" {
		return nil, fmt.Errorf("http_request: 'url' argument is required")
	}
	method := http.MethodGet
	if rawMethod, ok := call.Named["method"].(string); ok && rawMethod != "" {
		method = rawMethod
	}

	logger := ctxlog.FromContext(ctx)
	logger.Info("Making HTTP request.", "method", method, "url", rawURL)

	res, err := m.client.R().SetContext(ctx).Execute(method, rawURL)
	if err != nil {
		return nil, fmt.Errorf("http_request: %w", err)
	}
	logger.Info("Received HTTP response.", "status", res.Status())

	if res.IsError() {
		return nil, fmt.Errorf("http_request: server returned %s", res.Status())
	}

	return map[string]any{
		"status_code": res.StatusCode(),
		"body":        res.String(),
	}, nil
}

// Register registers the runner with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterRunner("http_request", m.onRunHTTPRequest)
}

// Close releases the shared HTTP client.
func (m *Module) Close() error {
	return m.client.Close()
}
