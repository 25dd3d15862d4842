// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voro2d

// growVertices doubles the vertex coordinate arena and the adjacency
// arena together, copying the live contents into fresh, larger buffers.
// It panics with a *MemoryLimitError if doubling would exceed the
// configured absolute maximum.
func (c *Cell2D) growVertices() {
	newCap := c.vCap * 2
	if newCap > c.vMax {
		panic(&MemoryLimitError{Arena: "vertex", Requested: newCap, Max: c.vMax})
	}

	npts := make([]float64, 2*newCap)
	copy(npts, c.pts)
	c.pts = npts

	ned := make([]int, 2*newCap)
	copy(ned, c.ed)
	c.ed = ned

	c.vCap = newCap
}

// growDeleteStack doubles the deletion stack's backing buffer, preserving
// the currently pushed entries. It panics with a *MemoryLimitError if
// doubling would exceed the configured absolute maximum.
func (c *Cell2D) growDeleteStack() {
	newCap := c.dsCap * 2
	if newCap > c.dsMax {
		panic(&MemoryLimitError{Arena: "delete stack", Requested: newCap, Max: c.dsMax})
	}

	nds := make([]int, newCap)
	copy(nds, c.ds[:c.dsTop])
	c.ds = nds
	c.dsCap = newCap
}

// pushDelete schedules vertex v for removal in the clip currently in
// progress, growing the deletion stack first if it is full.
func (c *Cell2D) pushDelete(v int) {
	if c.dsTop == c.dsCap {
		c.growDeleteStack()
	}
	c.ds[c.dsTop] = v
	c.dsTop++
}
