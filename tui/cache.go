package tui

import "github.com/rradio/console/statesync"

// subtreeCache memoizes the rendering of a wrapped state subtree. The cache
// is invalidated by handle identity, never by content comparison: that is the
// render-layer half of the change-identity contract. key carries any extra
// render input (such as the highlighted track index) that can change without
// the subtree being replaced.
type subtreeCache[T any] struct {
	handle   statesync.Shared[T]
	key      int
	valid    bool
	rendered string
	renders  int
}

func (c *subtreeCache[T]) get(handle statesync.Shared[T], key int, render func(*T) string) string {
	if c.valid && c.handle.Equal(handle) && c.key == key {
		return c.rendered
	}
	c.handle = handle
	c.key = key
	c.valid = true
	c.rendered = render(handle.Get())
	c.renders++
	return c.rendered
}
