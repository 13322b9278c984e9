package dag

import (
	"sort"

	"github.com/vk/taskflowgo/internal/task"
)

// Graph is an immutable, validated task graph. Tasks are held in a
// deterministic topological order: every task appears after all of its
// dependencies, with ties broken by original input order.
type Graph struct {
	ordered    []*task.Spec
	byName     map[string]*task.Spec
	topoIndex  map[string]int
	dependents map[string][]string // direct consumers, in input order
}

// New validates the given specs and builds an ordered graph. It returns the
// first structural error found: a spec's own validation error, a
// *DuplicateNameError, a *MissingDependencyError, or a *CycleError. No task
// is ever executed during construction.
func New(specs []*task.Spec) (*Graph, error) {
	byName := make(map[string]*task.Spec, len(specs))
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, exists := byName[s.Name]; exists {
			return nil, &DuplicateNameError{Name: s.Name}
		}
		byName[s.Name] = s
	}

	dependents := make(map[string][]string, len(specs))
	for _, s := range specs {
		for _, dep := range s.Dependencies {
			if _, ok := byName[dep.TaskName]; !ok {
				return nil, &MissingDependencyError{TaskName: s.Name, DependencyName: dep.TaskName}
			}
			dependents[dep.TaskName] = append(dependents[dep.TaskName], s.Name)
		}
	}

	ordered, err := sortTopologically(specs, byName, dependents)
	if err != nil {
		return nil, err
	}

	topoIndex := make(map[string]int, len(ordered))
	for i, s := range ordered {
		topoIndex[s.Name] = i
	}

	return &Graph{
		ordered:    ordered,
		byName:     byName,
		topoIndex:  topoIndex,
		dependents: dependents,
	}, nil
}

// Len returns the number of tasks in the graph.
func (g *Graph) Len() int { return len(g.ordered) }

// Tasks returns the tasks in topological order. The returned slice is a
// copy; the specs themselves are shared and must not be mutated.
func (g *Graph) Tasks() []*task.Spec {
	out := make([]*task.Spec, len(g.ordered))
	copy(out, g.ordered)
	return out
}

// Task looks up a spec by name, returning a *NotFoundError when the graph
// does not contain it.
func (g *Graph) Task(name string) (*task.Spec, error) {
	s, ok := g.byName[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return s, nil
}

// Dependents returns the names of every task that directly or transitively
// depends on the given task, in topological order. It is used by failure
// reporting to describe downstream impact; the scheduler itself never calls
// it. The traversal is an explicit worklist, so arbitrarily deep graphs do
// not grow the call stack.
func (g *Graph) Dependents(name string) ([]string, error) {
	if _, ok := g.byName[name]; !ok {
		return nil, &NotFoundError{Name: name}
	}

	seen := make(map[string]struct{})
	worklist := append([]string(nil), g.dependents[name]...)
	for len(worklist) > 0 {
		next := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		if _, dup := seen[next]; dup {
			continue
		}
		seen[next] = struct{}{}
		worklist = append(worklist, g.dependents[next]...)
	}

	found := make([]string, 0, len(seen))
	for n := range seen {
		found = append(found, n)
	}
	sort.Slice(found, func(i, j int) bool {
		return g.topoIndex[found[i]] < g.topoIndex[found[j]]
	})
	return found, nil
}
