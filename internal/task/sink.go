package task

import (
	"context"

	"github.com/vk/taskflowgo/internal/ctxlog"
)

// EventSink observes the lifecycle of one task's invocations. Implementations
// are associated 1:1 with a Spec; there is no ambient registry shared between
// graphs.
type EventSink interface {
	// Started is called immediately before the callable is invoked.
	Started(ctx context.Context, name string)
	// Succeeded is called after the callable returns without error.
	Succeeded(ctx context.Context, name string)
	// Failed is called after the callable returns an error or panics. The
	// note carries free-form context, e.g. which downstream tasks will be
	// skipped as a consequence.
	Failed(ctx context.Context, name string, err error, note string)
}

// Notifier delivers out-of-band failure notifications (e-mail, webhook).
// Implementations must tolerate concurrent calls; the scheduler treats them
// as best-effort and swallows any error they return.
type Notifier interface {
	NotifyFailure(ctx context.Context, name string, err error, note string) error
}

// LogSink is the default EventSink: it writes events through the slog.Logger
// carried in the invocation context.
type LogSink struct{}

func (LogSink) Started(ctx context.Context, name string) {
	ctxlog.FromContext(ctx).Info("▶️ Starting task", "task", name)
}

func (LogSink) Succeeded(ctx context.Context, name string) {
	ctxlog.FromContext(ctx).Info("✅ Task finished", "task", name)
}

func (LogSink) Failed(ctx context.Context, name string, err error, note string) {
	logger := ctxlog.FromContext(ctx)
	if note != "" {
		logger.Error("❌ Task failed", "task", name, "error", err, "impact", note)
		return
	}
	logger.Error("❌ Task failed", "task", name, "error", err)
}
