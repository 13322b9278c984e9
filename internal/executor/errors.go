package executor

// StallError aborts a concurrent run that can make no progress: no task is
// in flight and no candidate is runnable, yet tasks remain unresolved. A
// validated acyclic graph can never legitimately stall, so this indicates a
// bug in graph validation rather than a user error.
type StallError struct{}

func (*StallError) Error() string {
	return "execution stalled: no runnable candidates and no tasks in flight"
}
