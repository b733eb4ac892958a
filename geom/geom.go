// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geom provides the planar primitives shared by the triangulation, Voronoi and hull
// packages: points, directed lines, circles and the predicates built on them.

package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

const (
	// DefaultEps is the default tolerance for parallel and collinear tests.
	DefaultEps = 1e-12

	twoPi = 2 * math.Pi
)

// Point is a site or vertex in the plane.
type Point = r2.Point

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// nearlyParallel reports whether the directions u and v form an angle whose sine is at most eps.
// With eps == 0 only an exactly zero cross product counts.
func nearlyParallel(u, v Point, eps float64) bool {
	cross := u.Cross(v)
	if eps == 0 {
		return cross == 0
	}
	return math.Abs(cross) <= eps*u.Norm()*v.Norm()
}
