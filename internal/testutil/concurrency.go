package testutil

import "sync"

// ConcurrencyGauge records how many goroutines are inside an instrumented
// section at once. Tests wrap task bodies with Enter/Exit and assert on
// MaxObserved to verify that a worker bound was respected.
type ConcurrencyGauge struct {
	mu      sync.Mutex
	current int
	max     int
}

// Enter marks one goroutine as inside the section.
func (g *ConcurrencyGauge) Enter() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current++
	if g.current > g.max {
		g.max = g.current
	}
}

// Exit marks one goroutine as having left the section.
func (g *ConcurrencyGauge) Exit() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current--
}

// MaxObserved returns the highest simultaneous entry count seen so far.
func (g *ConcurrencyGauge) MaxObserved() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.max
}
