// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating random 2D
// sites to drive container.Grid and for test/demo fixtures.
package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomSites generates a slice of random sites uniformly
// distributed in the rectangle [xmin,xmax] x [ymin,ymax]. The seed
// parameter ensures reproducibility.
func GenerateRandomSites(cnt int, bound r2.Rect, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make([]r2.Point, cnt)

	dx := bound.X.Hi - bound.X.Lo
	dy := bound.Y.Hi - bound.Y.Lo
	for i := range cnt {
		sites[i] = r2.Point{
			X: bound.X.Lo + random.Float64()*dx,
			Y: bound.Y.Lo + random.Float64()*dy,
		}
	}

	return sites
}
