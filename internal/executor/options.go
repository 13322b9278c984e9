package executor

import "fmt"

// Mode selects the execution strategy for one run.
type Mode int

const (
	// Sequential runs tasks one at a time, in topological order.
	Sequential Mode = iota
	// Concurrent runs ready tasks on a bounded worker pool.
	Concurrent
)

// String returns the mode's CLI spelling.
func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Concurrent:
		return "concurrent"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a CLI spelling into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "sequential":
		return Sequential, nil
	case "concurrent":
		return Concurrent, nil
	default:
		return Sequential, fmt.Errorf("invalid mode %q: must be 'sequential' or 'concurrent'", s)
	}
}

// Options configure one run.
type Options struct {
	Mode Mode
	// Workers bounds concurrent task invocations. Only meaningful in
	// Concurrent mode; values below 1 are raised to 1, and a bound of 1
	// behaves identically to Sequential.
	Workers int
}
