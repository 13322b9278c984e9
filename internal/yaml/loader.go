// Package yaml provides the YAML implementation of the config.Loader
// interface, for users who prefer YAML pipeline files over HCL.
package yaml

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/taskflowgo/internal/config"
	"github.com/vk/taskflowgo/internal/ctxlog"
	"github.com/vk/taskflowgo/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// pipelineFile is the YAML document shape.
type pipelineFile struct {
	Tasks []taskEntry `yaml:"tasks"`
}

type taskEntry struct {
	Name         string            `yaml:"name"`
	Runner       string            `yaml:"runner"`
	Arguments    map[string]any    `yaml:"arguments"`
	Positional   []any             `yaml:"positional"`
	Dependencies []dependencyEntry `yaml:"dependencies"`
}

type dependencyEntry struct {
	Task    string `yaml:"task"`
	AsArg   bool   `yaml:"as_arg"`
	AsNamed string `yaml:"as_named"`
}

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .yaml/.yml file reachable from the given paths and
// translates the task entries into the format-agnostic model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access config path %q: %w", path, err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".yaml", ".yml")
			if err != nil {
				return nil, fmt.Errorf("failed to scan config directory %q: %w", path, err)
			}
			files = append(files, found...)
		} else {
			files = append(files, path)
		}
	}
	logger.Debug("YAML loader discovered config files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		var doc pipelineFile
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}
		for _, entry := range doc.Tasks {
			translated := &config.Task{
				RunnerType: entry.Runner,
				Name:       entry.Name,
				Arguments:  entry.Arguments,
				Positional: entry.Positional,
			}
			for _, dep := range entry.Dependencies {
				translated.Dependencies = append(translated.Dependencies, &config.Dependency{
					Task:    dep.Task,
					AsArg:   dep.AsArg,
					AsNamed: dep.AsNamed,
				})
			}
			model.Tasks = append(model.Tasks, translated)
		}
	}

	logger.Debug("YAML loader finished.", "tasks", len(model.Tasks))
	return model, nil
}
