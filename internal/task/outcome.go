package task

// Outcome is the tagged result of one execution attempt: either a success
// carrying the callable's return value, or a failure carrying the captured
// error. It is immutable once produced.
type Outcome struct {
	value any
	err   error
}

// Succeeded wraps a successful result value.
func Succeeded(value any) Outcome {
	return Outcome{value: value}
}

// Failed wraps a captured execution error.
func Failed(err error) Outcome {
	return Outcome{err: err}
}

// OK reports whether the attempt succeeded.
func (o Outcome) OK() bool { return o.err == nil }

// Value returns the result value of a successful attempt, or nil for a
// failed one.
func (o Outcome) Value() any { return o.value }

// Err returns the captured error of a failed attempt, or nil.
func (o Outcome) Err() error { return o.err }
