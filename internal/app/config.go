package app

import (
	"fmt"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPath points at a pipeline file or a directory of pipeline files.
	ConfigPath string
	// Format selects the pipeline file format: "hcl", "yaml", or "auto"
	// (detect from the file extension, defaulting to HCL).
	Format string
	// Mode selects the execution strategy: "sequential", "concurrent", or
	// "auto" (concurrent for pipelines of 10+ tasks).
	Mode string
	// WorkerCount bounds concurrent task invocations in concurrent mode.
	WorkerCount int
	// WebhookURL, when set, attaches a webhook failure notifier to every
	// task in the pipeline.
	WebhookURL string
	LogFormat  string
	LogLevel   string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, fmt.Errorf("config path is required")
	}
	if cfg.Mode == "" {
		cfg.Mode = "auto"
	}
	switch strings.ToLower(cfg.Mode) {
	case "sequential", "concurrent", "auto":
		cfg.Mode = strings.ToLower(cfg.Mode)
	default:
		return nil, fmt.Errorf("invalid mode %q: must be 'sequential', 'concurrent', or 'auto'", cfg.Mode)
	}
	if cfg.Format == "" {
		cfg.Format = "auto"
	}
	switch strings.ToLower(cfg.Format) {
	case "hcl", "yaml", "auto":
		cfg.Format = strings.ToLower(cfg.Format)
	default:
		return nil, fmt.Errorf("invalid format %q: must be 'hcl', 'yaml', or 'auto'", cfg.Format)
	}
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = 1
	}
	return &cfg, nil
}
