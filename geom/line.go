// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"fmt"
	"math"
)

// BisectorHalfLength is the distance from the midpoint to either end of a perpendicular bisector.
const BisectorHalfLength = 0.2

// Line is a directed segment from Src to Dst. Most operations treat it as the infinite line
// through both points. Lines are values: operations that move an endpoint return a new Line.
type Line struct {
	Src Point
	Dst Point
}

// NewLine returns the line from src to dst.
func NewLine(src, dst Point) Line {
	return Line{Src: src, Dst: dst}
}

// Midpoint returns the point halfway between Src and Dst.
func (l Line) Midpoint() Point {
	return Point{X: (l.Src.X + l.Dst.X) / 2, Y: (l.Src.Y + l.Dst.Y) / 2}
}

// Slope returns dy/dx. Vertical lines have a slope of ±Inf.
func (l Line) Slope() float64 {
	return (l.Dst.Y - l.Src.Y) / (l.Dst.X - l.Src.X)
}

// OrthogonalSlope returns -1/Slope. Horizontal lines have an orthogonal slope of ±Inf.
func (l Line) OrthogonalSlope() float64 {
	return -1 / l.Slope()
}

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 {
	return Distance(l.Src, l.Dst)
}

// Direction returns Dst - Src.
func (l Line) Direction() Point {
	return l.Dst.Sub(l.Src)
}

// Reversed returns the line from Dst to Src.
func (l Line) Reversed() Line {
	return Line{Src: l.Dst, Dst: l.Src}
}

// WithSrc returns a copy of l starting at p.
func (l Line) WithSrc(p Point) Line {
	return Line{Src: p, Dst: l.Dst}
}

// WithDst returns a copy of l ending at p.
func (l Line) WithDst(p Point) Line {
	return Line{Src: l.Src, Dst: p}
}

// Angle returns the counter-clockwise angle from the positive x-axis to the direction of l,
// in [0, 2π). A zero-length line has angle 0.
func (l Line) Angle() float64 {
	dx := l.Dst.X - l.Src.X
	dy := l.Dst.Y - l.Src.Y

	var a float64
	switch {
	case dx == 0 && dy == 0:
		return 0
	case dx == 0 && dy > 0:
		return math.Pi / 2
	case dx == 0:
		return 3 * math.Pi / 2
	case dx < 0:
		a = math.Pi + math.Atan(dy/dx)
	case dy < 0:
		a = twoPi + math.Atan(dy/dx)
	default:
		a = math.Atan(dy / dx)
	}
	if a >= twoPi {
		a -= twoPi
	}
	return a
}

// AngleBetween returns the counter-clockwise angle swept from the direction of a to the
// direction of b, in [0, 2π).
func AngleBetween(a, b Line) float64 {
	from := a.Angle()
	to := b.Angle()
	if to < from {
		to += twoPi
	}
	return to - from
}

// PerpendicularBisector returns a segment of length 2*BisectorHalfLength centred on the
// midpoint of l and orthogonal to it. The result is undefined for a zero-length line.
func (l Line) PerpendicularBisector() Line {
	m := l.Midpoint()
	slope := l.OrthogonalSlope()
	if math.IsInf(slope, 0) {
		return Line{
			Src: Point{X: m.X, Y: m.Y + BisectorHalfLength},
			Dst: Point{X: m.X, Y: m.Y - BisectorHalfLength},
		}
	}

	d := BisectorHalfLength / math.Sqrt(1+slope*slope)
	return Line{
		Src: Point{X: m.X + d, Y: m.Y + slope*d},
		Dst: Point{X: m.X - d, Y: m.Y - slope*d},
	}
}

// Intersection returns the point where the infinite extensions of a and b cross.
// The lines are treated as parallel, and ok is false, when the sine of the angle between
// them is at most eps; eps == 0 requires the determinant to be exactly zero.
func Intersection(a, b Line, eps float64) (p Point, ok bool) {
	da := a.Src.Sub(a.Dst)
	db := b.Src.Sub(b.Dst)
	if nearlyParallel(da, db, eps) {
		return Point{}, false
	}

	det := da.Cross(db)
	ca := a.Src.Cross(a.Dst)
	cb := b.Src.Cross(b.Dst)
	return Point{
		X: (ca*db.X - da.X*cb) / det,
		Y: (ca*db.Y - da.Y*cb) / det,
	}, true
}

// Intersect is Intersection with DefaultEps, reporting parallel lines as a *DegenerateError.
func (l Line) Intersect(o Line) (Point, error) {
	p, ok := Intersection(l, o, DefaultEps)
	if !ok {
		return Point{}, degenerate("Intersect", "lines %v and %v are parallel", l, o)
	}
	return p, nil
}

func (l Line) String() string {
	return fmt.Sprintf("[(%.2f, %.2f) -> (%.2f, %.2f)]", l.Src.X, l.Src.Y, l.Dst.X, l.Dst.Y)
}
