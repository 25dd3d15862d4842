// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package container provides a minimal uniform-grid site container that
// drives a voro2d.Cell2D through successive half-plane cuts against the
// neighbors of a given site. It is a deliberately thin stand-in for the
// full particle-container layer voro2d's core spec defers to a
// surrounding system: enough to exercise Cell2D end-to-end against more
// than one hand-picked plane, not a general-purpose tessellation engine
// (no periodicity, no image particles, no cell lists beyond the single
// grid).
package container

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"

	"github.com/kvoron/voro2d"
)

type gridOptions struct {
	cellSide float64
}

// GridOption configures a Grid at construction time.
type GridOption func(*gridOptions)

// WithCellSide overrides the grid's bucket side length. Larger values
// mean fewer, more populated buckets and rings that need to be searched
// further to fully cut a cell; the right value scales with the average
// spacing between sites.
func WithCellSide(side float64) GridOption {
	if side <= 0 {
		panic("WithCellSide: side must be positive")
	}
	return func(o *gridOptions) { o.cellSide = side }
}

// Grid buckets a fixed set of 2D sites into a uniform grid for
// expanding-ring neighbor search.
type Grid struct {
	sites   []r2.Point
	side    float64
	buckets map[[2]int][]int
}

// NewGrid buckets sites into a uniform grid. The slice is retained, not
// copied; callers must not mutate it afterward.
func NewGrid(sites []r2.Point, opts ...GridOption) *Grid {
	o := gridOptions{cellSide: 1}
	for _, opt := range opts {
		opt(&o)
	}
	g := &Grid{sites: sites, side: o.cellSide, buckets: make(map[[2]int][]int)}
	for i, s := range sites {
		key := g.bucketOf(s)
		g.buckets[key] = append(g.buckets[key], i)
	}
	return g
}

func (g *Grid) bucketOf(p r2.Point) [2]int {
	return [2]int{int(math.Floor(p.X / g.side)), int(math.Floor(p.Y / g.side))}
}

// Cell builds the Voronoi cell of site i by seeding bound as the
// starting rectangle and clipping it with the perpendicular-bisector
// half-plane of every other site, visited in expanding concentric rings
// outward from i's bucket. Ring expansion stops once every other site
// has been visited or no farther site could still cut the cell, the
// standard Voronoi container termination test: once a ring's nearest
// possible site is more than twice as far from site i as the cell's
// farthest vertex, no site in it or beyond can still intersect the
// cell. The cell is in the same absolute coordinates as bound and the
// sites.
func (g *Grid) Cell(i int, bound r2.Rect) (*voro2d.Cell2D, error) {
	if i < 0 || i >= len(g.sites) {
		return nil, fmt.Errorf("container: site index %d out of range [0,%d)", i, len(g.sites))
	}

	site := g.sites[i]
	cell := voro2d.NewCell2D()
	cell.Init(bound)

	base := g.bucketOf(site)
	seen := make(map[int]bool, len(g.sites))

	for ring := 0; len(seen) < len(g.sites)-1; ring++ {
		if ring > 0 {
			ringMinDist := float64(ring-1) * g.side
			var reachSq float64
			cell.Walk(func(x, y float64) {
				dx, dy := x-site.X, y-site.Y
				reachSq = math.Max(reachSq, dx*dx+dy*dy)
			})
			if ringMinDist > 0 && ringMinDist*ringMinDist > 4*reachSq {
				break
			}
		}
		for _, key := range ringKeys(base, ring) {
			for _, j := range g.buckets[key] {
				if j == i || seen[j] {
					continue
				}
				seen[j] = true

				nx, ny := g.sites[j].X-site.X, g.sites[j].Y-site.Y
				rsq := nx*(g.sites[j].X+site.X) + ny*(g.sites[j].Y+site.Y)
				if !cell.Plane(r2.Point{X: nx, Y: ny}, rsq) {
					return cell, nil
				}
			}
		}
	}
	return cell, nil
}

// ringKeys returns the bucket keys forming the square ring at Chebyshev
// distance ring from base; ring 0 is just base itself.
func ringKeys(base [2]int, ring int) [][2]int {
	if ring == 0 {
		return [][2]int{base}
	}
	keys := make([][2]int, 0, 8*ring)
	for dx := -ring; dx <= ring; dx++ {
		keys = append(keys, [2]int{base[0] + dx, base[1] + ring})
		keys = append(keys, [2]int{base[0] + dx, base[1] - ring})
	}
	for dy := -ring + 1; dy <= ring-1; dy++ {
		keys = append(keys, [2]int{base[0] + ring, base[1] + dy})
		keys = append(keys, [2]int{base[0] - ring, base[1] + dy})
	}
	return keys
}
