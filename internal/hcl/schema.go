package hcl

import "github.com/hashicorp/hcl/v2"

// taskArgs represents the content of the 'arguments' block within a task.
type taskArgs struct {
	Body hcl.Body `hcl:",remain"`
}

// taskBlock represents a `task` block from a user's pipeline file.
type taskBlock struct {
	RunnerType   string             `hcl:"runner_type,label"`
	Name         string             `hcl:"task_name,label"`
	Arguments    *taskArgs          `hcl:"arguments,block"`
	Positional   hcl.Expression     `hcl:"positional,optional"`
	Dependencies []*dependencyBlock `hcl:"dependency,block"`
}

// dependencyBlock represents a `dependency` block within a task: the
// producer reference plus the result-injection policy.
type dependencyBlock struct {
	Task    string `hcl:"task"`
	AsArg   bool   `hcl:"as_arg,optional"`
	AsNamed string `hcl:"as_named,optional"`
}

// pipelineConfig represents the top-level structure of a pipeline file.
type pipelineConfig struct {
	Tasks []*taskBlock `hcl:"task,block"`
	Body  hcl.Body     `hcl:",remain"`
}
