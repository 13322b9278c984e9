package dag

import "github.com/vk/taskflowgo/internal/task"

// sortTopologically orders specs so that every producer precedes its
// consumers (Kahn's algorithm). The ready queue is seeded and drained in
// input order, which makes the result stable: simultaneously-ready tasks
// keep their original relative order. A result shorter than the input means
// the dependency relation contains a cycle; this single pass is the
// authoritative cycle detection.
func sortTopologically(specs []*task.Spec, byName map[string]*task.Spec, dependents map[string][]string) ([]*task.Spec, error) {
	inDegree := make(map[string]int, len(specs))
	for _, s := range specs {
		inDegree[s.Name] = len(s.Dependencies)
	}

	var queue []string
	for _, s := range specs {
		if inDegree[s.Name] == 0 {
			queue = append(queue, s.Name)
		}
	}

	ordered := make([]*task.Spec, 0, len(specs))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		ordered = append(ordered, byName[name])
		for _, consumer := range dependents[name] {
			inDegree[consumer]--
			if inDegree[consumer] == 0 {
				queue = append(queue, consumer)
			}
		}
	}

	if len(ordered) < len(specs) {
		return nil, &CycleError{Path: cyclePath(specs, inDegree)}
	}
	return ordered, nil
}

// cyclePath recovers one concrete cycle from the tasks Kahn's algorithm left
// unsorted, purely as a diagnostic. Every leftover task still has an
// unsatisfied dependency among the leftovers, so following any such edge
// must eventually revisit a task.
func cyclePath(specs []*task.Spec, inDegree map[string]int) []string {
	leftover := make(map[string]*task.Spec)
	var start *task.Spec
	for _, s := range specs {
		if inDegree[s.Name] > 0 {
			leftover[s.Name] = s
			if start == nil {
				start = s
			}
		}
	}
	if start == nil {
		return nil
	}

	visitedAt := make(map[string]int)
	var path []string
	current := start
	for {
		if at, seen := visitedAt[current.Name]; seen {
			return append(path[at:], current.Name)
		}
		visitedAt[current.Name] = len(path)
		path = append(path, current.Name)

		var next *task.Spec
		for _, dep := range current.Dependencies {
			if s, ok := leftover[dep.TaskName]; ok {
				next = s
				break
			}
		}
		if next == nil {
			// Should be unreachable for a genuine leftover set; give up on
			// the diagnostic rather than loop.
			return nil
		}
		current = next
	}
}
