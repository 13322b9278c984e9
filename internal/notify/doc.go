// Package notify provides out-of-band failure notification sinks that plug
// into a task spec: an HTML e-mail notifier and a JSON webhook notifier.
// Both are best-effort by contract; the executor swallows their errors.
package notify
