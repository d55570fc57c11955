package details

// ViewCounter counts how often the letters overlay was asked to present.
// It only grows.
type ViewCounter struct {
	n int
}

// Increment adds one and returns the new value.
func (c *ViewCounter) Increment() int {
	c.n++
	return c.n
}

// Value returns the current count.
func (c ViewCounter) Value() int {
	return c.n
}
