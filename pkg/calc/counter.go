package calc

import "sync/atomic"

// Counter counts successful calculations. Calculators constructed with the
// same handle share one count, which is how the process-wide total is kept.
// Atomic because the MCP server evaluates from concurrent tool calls.
type Counter struct {
	n atomic.Int64
}

// NewCounter returns a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Increment records one completed calculation.
func (c *Counter) Increment() {
	c.n.Add(1)
}

// Value returns the number of completed calculations so far.
func (c *Counter) Value() int64 {
	return c.n.Load()
}
