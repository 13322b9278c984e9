package notify

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"
)

// Webhook posts failure notifications as JSON to an HTTP endpoint.
type Webhook struct {
	client *resty.Client
	url    string
}

// webhookPayload is the JSON body of one notification.
type webhookPayload struct {
	Task  string `json:"task"`
	Error string `json:"error"`
	Note  string `json:"note,omitempty"`
}

// NewWebhook creates a webhook notifier targeting the given URL.
func NewWebhook(url string) *Webhook {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &Webhook{client: client, url: url}
}

// NotifyFailure implements task.Notifier.
func (w *Webhook) NotifyFailure(ctx context.Context, name string, taskErr error, note string) error {
	res, err := w.client.R().
		SetContext(ctx).
		SetBody(webhookPayload{Task: name, Error: taskErr.Error(), Note: note}).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("posting failure notification for task %q: %w", name, err)
	}
	if res.IsError() {
		return fmt.Errorf("failure notification for task %q rejected: %s", name, res.Status())
	}
	return nil
}

// Close releases the underlying HTTP client.
func (w *Webhook) Close() error {
	return w.client.Close()
}
