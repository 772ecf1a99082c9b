package netlist

// ChildCount returns the number of memoized child configurations.
// This is exported for testing purposes only.
func (c *Configuration) ChildCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.children)
}
