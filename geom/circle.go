// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

// Circle is a circle in the plane.
type Circle struct {
	Center Point
	Radius float64
}

// ContainsStrict reports whether p lies strictly inside c.
func (c Circle) ContainsStrict(p Point) bool {
	return Distance(c.Center, p) < c.Radius
}

// CircleThrough returns the circumcircle of a, b and c. Triples whose edges ab and ac form an
// angle with a sine of at most eps are collinear and yield a *DegenerateError.
func CircleThrough(a, b, c Point, eps float64) (Circle, error) {
	if nearlyParallel(b.Sub(a), c.Sub(a), eps) {
		return Circle{}, degenerate("CircleThrough", "points %v, %v, %v are collinear", a, b, c)
	}

	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y

	center := Point{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}
	return Circle{Center: center, Radius: Distance(center, a)}, nil
}
