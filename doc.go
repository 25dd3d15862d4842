// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package voro2d computes a single two-dimensional Voronoi cell by
// successive half-plane intersection.
//
// A Cell2D starts life as an axis-aligned rectangle (Init) and is
// repeatedly clipped by half-planes induced by neighboring sites
// (Plane). After each cut the cell's vertex/edge topology is updated in
// place; Perimeter, Area, Centroid, and MaxRadiusSquared then report
// aggregate geometry of whatever survives. DrawGnuplot, DrawPOV, and
// OutputCustom format the current boundary for external tools.
//
// Cell2D owns a pair of parallel growable arenas (vertex coordinates and
// cyclic adjacency) plus a scratch deletion stack; none of its state is
// safe for concurrent mutation.
package voro2d
