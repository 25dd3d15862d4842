// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package voro2d

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Cell2D is a convex polygon represented as a doubly-linked cyclic
// vertex list held in a pair of parallel growable arenas. Vertex
// identity is its current index in the arena and is not stable across
// Plane calls — compaction reassigns indices after every cut.
//
// Coordinates stored in pts are twice the geometric coordinates
// (Invariant 5 of the cell's data model); every exported query unwinds
// this scaling, except MaxRadiusSquared, whose scaled result callers
// must multiply by 0.25 themselves, matching the convention inherited
// from the design this type ports.
//
// Cell2D is not safe for concurrent use.
type Cell2D struct {
	pts []float64 // (x0,y0,x1,y1,...), scaled 2x, length 2*vCap
	ed  []int     // (succ0,pred0,succ1,pred1,...), length 2*vCap

	p    int // live vertex count; vertices occupy [0,p)
	vCap int
	vMax int

	ds    []int // deletion-stack scratch buffer
	dsTop int
	dsCap int
	dsMax int

	tolerance float64
}

// NewCell2D constructs an empty cell. Call Init before any other method.
func NewCell2D(opts ...CellOption) *Cell2D {
	o := defaultCellOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.initVertices > o.maxVertices {
		panic(&MemoryLimitError{Arena: "vertex", Requested: o.initVertices, Max: o.maxVertices})
	}
	if o.initDeleteSize > o.maxDeleteSize {
		panic(&MemoryLimitError{Arena: "delete stack", Requested: o.initDeleteSize, Max: o.maxDeleteSize})
	}
	return &Cell2D{
		pts:       make([]float64, 2*o.initVertices),
		ed:        make([]int, 2*o.initVertices),
		vCap:      o.initVertices,
		vMax:      o.maxVertices,
		ds:        make([]int, o.initDeleteSize),
		dsCap:     o.initDeleteSize,
		dsMax:     o.maxDeleteSize,
		tolerance: o.tolerance,
	}
}

// NewRect builds the r2.Rect boundary Init expects from four scalar
// bounds (xmin, xmax, ymin, ymax).
func NewRect(xmin, xmax, ymin, ymax float64) r2.Rect {
	return r2.Rect{X: r1.Interval{Lo: xmin, Hi: xmax}, Y: r1.Interval{Lo: ymin, Hi: ymax}}
}

// Init seeds the cell as a rectangle with four vertices in
// counter-clockwise order: (xmin,ymin), (xmax,ymin), (xmax,ymax),
// (xmin,ymax). Any pre-existing contents are discarded; callers should
// only call Init on a freshly constructed cell.
func (c *Cell2D) Init(bound r2.Rect) {
	xmin, xmax := 2*bound.X.Lo, 2*bound.X.Hi
	ymin, ymax := 2*bound.Y.Lo, 2*bound.Y.Hi

	c.p = 4
	c.pts[0], c.pts[1] = xmin, ymin
	c.pts[2], c.pts[3] = xmax, ymin
	c.pts[4], c.pts[5] = xmax, ymax
	c.pts[6], c.pts[7] = xmin, ymax

	c.ed[0], c.ed[1] = 1, 3
	c.ed[2], c.ed[3] = 2, 0
	c.ed[4], c.ed[5] = 3, 1
	c.ed[6], c.ed[7] = 0, 2

	c.dsTop = 0
}

// NumVertices reports the current live vertex count p.
func (c *Cell2D) NumVertices() int { return c.p }

func (c *Cell2D) succ(v int) int    { return c.ed[2*v] }
func (c *Cell2D) pred(v int) int    { return c.ed[2*v+1] }
func (c *Cell2D) setSucc(v, s int)  { c.ed[2*v] = s }
func (c *Cell2D) setPred(v, pr int) { c.ed[2*v+1] = pr }

// pos returns the signed distance of vertex v from the plane with
// normal (x,y) and offset rsq: positive means v is on the side being
// clipped away.
func (c *Cell2D) pos(x, y, rsq float64, v int) float64 {
	return x*c.pts[2*v] + y*c.pts[2*v+1] - rsq
}

// Plane clips the cell by the half-plane with the given normal and
// offset rsq (the convention is x*X + y*Y - rsq; the positive side is
// cut away). It reports false if the cut removes the cell entirely, in
// which case NumVertices becomes 0 and every query reports its zero
// value; subsequent Plane calls on an empty cell are no-ops returning
// false.
func (c *Cell2D) Plane(normal r2.Point, rsq float64) bool {
	if c.p == 0 {
		return false
	}
	x, y := normal.X, normal.Y
	c.dsTop = 0

	// Phase 1: find one vertex outside the plane, or confirm the cell
	// lies entirely on the kept side.
	up := 0
	u := c.pos(x, y, rsq, up)
	if u < c.tolerance {
		up2 := c.succ(up)
		u2 := c.pos(x, y, rsq, up2)
		up3 := c.pred(up)
		u3 := c.pos(x, y, rsq, up3)
		if u2 > u3 {
			for u2 < c.tolerance {
				up2 = c.succ(up2)
				u2 = c.pos(x, y, rsq, up2)
				if up2 == up3 {
					return true
				}
			}
			up, u = up2, u2
		} else {
			for u3 < c.tolerance {
				up3 = c.pred(up3)
				u3 = c.pos(x, y, rsq, up3)
				if up2 == up3 {
					return true
				}
			}
			up, u = up3, u3
		}
	}

	// Phase 2: sweep the outside arc in the succ direction.
	c.pushDelete(up)
	l := u
	up2 := c.succ(up)
	u2 := c.pos(x, y, rsq, up2)
	for u2 > c.tolerance {
		c.pushDelete(up2)
		up2 = c.succ(up2)
		l = u2
		u2 = c.pos(x, y, rsq, up2)
		if up2 == up {
			c.p = 0
			c.dsTop = 0
			return false
		}
	}

	// Phase 3: succ-side boundary vertex.
	var cp int
	if u2 > -c.tolerance {
		cp = up2
	} else {
		if c.p == c.vCap {
			c.growVertices()
		}
		lp := c.pred(up2)
		fac := 1 / (u2 - l)
		c.pts[2*c.p] = (c.pts[2*lp]*u2 - c.pts[2*up2]*l) * fac
		c.pts[2*c.p+1] = (c.pts[2*lp+1]*u2 - c.pts[2*up2+1]*l) * fac
		c.setSucc(c.p, up2)
		c.setPred(up2, c.p)
		cp = c.p
		c.p++
	}

	// Phase 4: sweep the outside arc in the pred direction.
	l = u
	up3 := c.pred(up)
	u3 := c.pos(x, y, rsq, up3)
	for u3 > c.tolerance {
		c.pushDelete(up3)
		up3 = c.pred(up3)
		l = u3
		u3 = c.pos(x, y, rsq, up3)
		if up3 == up2 {
			break
		}
	}

	// Phase 5: pred-side boundary vertex.
	if u3 > c.tolerance {
		c.setPred(cp, up3)
		c.setSucc(up3, cp)
	} else {
		if c.p == c.vCap {
			c.growVertices()
		}
		lp := c.succ(up3)
		fac := 1 / (u3 - l)
		c.pts[2*c.p] = (c.pts[2*lp]*u3 - c.pts[2*up3]*l) * fac
		c.pts[2*c.p+1] = (c.pts[2*lp+1]*u3 - c.pts[2*up3+1]*l) * fac
		c.setSucc(c.p, cp)
		c.setPred(cp, c.p)
		c.setPred(c.p, up3)
		c.setSucc(up3, c.p)
		c.p++
	}

	// Phase 6: tombstone the deleted vertices and compact.
	for i := 0; i < c.dsTop; i++ {
		c.setSucc(c.ds[i], -1)
	}
	for c.dsTop > 0 {
		for {
			c.p--
			if c.succ(c.p) != -1 {
				break
			}
		}
		c.dsTop--
		v := c.ds[c.dsTop]
		if v < c.p {
			last := c.p
			s := c.succ(last)
			pr := c.pred(last)
			c.setPred(s, v)
			c.setSucc(pr, v)
			c.pts[2*v] = c.pts[2*last]
			c.pts[2*v+1] = c.pts[2*last+1]
			c.setSucc(v, s)
			c.setPred(v, pr)
		} else {
			c.p++
		}
	}
	return true
}
