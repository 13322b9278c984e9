package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/taskflowgo/internal/config"
	"github.com/vk/taskflowgo/internal/ctxlog"
	"github.com/vk/taskflowgo/internal/fsutil"
)

// Loader is the HCL implementation of the config.Loader interface.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads every .hcl file reachable from the given paths and translates
// the task blocks into the format-agnostic model. A path may be a single
// file or a directory.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access config path %q: %w", path, err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, fmt.Errorf("failed to scan config directory %q: %w", path, err)
			}
			files = append(files, found...)
		} else {
			files = append(files, path)
		}
	}
	logger.Debug("HCL loader discovered config files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		f, diags := l.parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %s", file, diags.Error())
		}

		var cfg pipelineConfig
		if diags := gohcl.DecodeBody(f.Body, nil, &cfg); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %s", file, diags.Error())
		}

		for _, block := range cfg.Tasks {
			translated, err := l.translateTask(block)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", file, err)
			}
			model.Tasks = append(model.Tasks, translated)
		}
	}

	logger.Debug("HCL loader finished.", "tasks", len(model.Tasks))
	return model, nil
}

// translateTask converts an HCL task block into the agnostic model,
// evaluating every argument expression eagerly. Pipeline files are pure
// data: no variables are in scope, so expressions evaluate against a nil
// context.
func (l *Loader) translateTask(block *taskBlock) (*config.Task, error) {
	out := &config.Task{
		RunnerType: block.RunnerType,
		Name:       block.Name,
	}

	if block.Arguments != nil {
		attrs, diags := block.Arguments.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("task %q: invalid arguments block: %s", block.Name, diags.Error())
		}
		out.Arguments = make(map[string]any, len(attrs))
		for name, attr := range attrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("task %q: evaluating argument %q: %s", block.Name, name, diags.Error())
			}
			converted, err := ctyToGo(val)
			if err != nil {
				return nil, fmt.Errorf("task %q: argument %q: %w", block.Name, name, err)
			}
			out.Arguments[name] = converted
		}
	}

	if block.Positional != nil {
		val, diags := block.Positional.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("task %q: evaluating positional arguments: %s", block.Name, diags.Error())
		}
		converted, err := ctyToGo(val)
		if err != nil {
			return nil, fmt.Errorf("task %q: positional arguments: %w", block.Name, err)
		}
		list, ok := converted.([]any)
		if !ok && converted != nil {
			return nil, fmt.Errorf("task %q: positional must be a list", block.Name)
		}
		out.Positional = list
	}

	for _, dep := range block.Dependencies {
		out.Dependencies = append(out.Dependencies, &config.Dependency{
			Task:    dep.Task,
			AsArg:   dep.AsArg,
			AsNamed: dep.AsNamed,
		})
	}

	return out, nil
}
