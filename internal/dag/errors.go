package dag

import (
	"fmt"
	"strings"
)

// DuplicateNameError reports two specs sharing one task name.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate task name: %q", e.Name)
}

// MissingDependencyError reports a dependency edge naming a producer that is
// not part of the task set.
type MissingDependencyError struct {
	TaskName       string
	DependencyName string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("task %q depends on missing task: %q", e.TaskName, e.DependencyName)
}

// CycleError reports a circular dependency. Path, when recoverable, holds
// the cycle as a sequence of task names with the first name repeated last.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	if len(e.Path) == 0 {
		return "cycle detected"
	}
	return "cycle detected: " + strings.Join(e.Path, " -> ")
}

// NotFoundError reports a lookup of a task name the graph does not contain.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %q", e.Name)
}
