// Package cli parses command-line arguments into an app.Config. It owns the
// user-facing flag surface and nothing else; all execution logic lives in
// the app package.
package cli
