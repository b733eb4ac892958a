// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package reference computes a planar Delaunay triangulation and convex hull with QuickHull,
// for cross-checking the home-grown pipeline. Sites are lifted onto the paraboloid
// z = x² + y²; the downward-facing faces of the lifted hull are the Delaunay triangles and the
// boundary of those faces is the planar convex hull.

package reference

import (
	"slices"

	"github.com/2dChan/r2voronoi/geom"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"github.com/pkg/errors"
)

const (
	defaultEps = 1e-12
)

type Result struct {
	Sites []geom.Point
	// NOTE: Counter-clockwise in the plane.
	Triangles [][3]int
	// NOTE: Sorted (min, max) pairs, each edge once.
	Edges [][2]int
	// NOTE: Counter-clockwise walk of hull vertices, first vertex not repeated.
	Hull []int
}

// HullEdges returns the hull as a closed sequence of lines.
func (r *Result) HullEdges() []geom.Line {
	n := len(r.Hull)
	lines := make([]geom.Line, n)
	for i, v := range r.Hull {
		lines[i] = geom.NewLine(r.Sites[v], r.Sites[r.Hull[(i+1)%n]])
	}
	return lines
}

type Options struct {
	Eps float64
}

type Option func(*Options) error

// WithEps sets the QuickHull tolerance, relative to the extent of the lifted sites.
func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps < 0 || eps >= 1 {
			return errors.Errorf("WithEps: eps must be in [0, 1), got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// Triangulate returns the Delaunay triangulation and convex hull of sites.
func Triangulate(sites []geom.Point, setters ...Option) (*Result, error) {
	opts := Options{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numSites := len(sites)
	if err := geom.CheckSites(numSites); err != nil {
		return nil, errors.Wrap(err, "reference")
	}

	lifted := make([]r3.Vector, numSites)
	var centroid r3.Vector
	for i, p := range sites {
		lifted[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.X*p.X + p.Y*p.Y}
		centroid = centroid.Add(lifted[i])
	}
	centroid = centroid.Mul(1 / float64(numSites))

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, opts.Eps)
	if len(ch.Indices)%3 != 0 || len(ch.Indices) == 0 {
		return nil, errors.New("reference: inconsistent number of indices returned from QuickHull")
	}

	r := &Result{Sites: sites}
	for base := 0; base < len(ch.Indices); base += 3 {
		a, b, c := ch.Indices[base], ch.Indices[base+1], ch.Indices[base+2]
		pa := lifted[a]
		normal := lifted[b].Sub(pa).Cross(lifted[c].Sub(pa))
		if normal.Dot(pa.Sub(centroid)) < 0 {
			normal = normal.Mul(-1)
		}
		if normal.Z >= 0 {
			continue
		}
		if orientation(sites[a], sites[b], sites[c]) < 0 {
			b, c = c, b
		}
		r.Triangles = append(r.Triangles, [3]int{a, b, c})
	}
	if len(r.Triangles) == 0 {
		return nil, errors.New("reference: no downward-facing faces, sites are collinear")
	}

	r.Edges = triangleEdges(r.Triangles)

	hull, err := boundaryLoop(r.Triangles)
	if err != nil {
		return nil, err
	}
	r.Hull = hull
	return r, nil
}

func orientation(a, b, c geom.Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

func triangleEdges(tris [][3]int) [][2]int {
	edges := make([][2]int, 0, 3*len(tris))
	for _, t := range tris {
		for i := range 3 {
			u, v := t[i], t[(i+1)%3]
			if u > v {
				u, v = v, u
			}
			edges = append(edges, [2]int{u, v})
		}
	}
	slices.SortFunc(edges, func(a, b [2]int) int {
		return slices.Compare(a[:], b[:])
	})
	return slices.Compact(edges)
}

// boundaryLoop walks the directed edges of counter-clockwise triangles that have no twin.
func boundaryLoop(tris [][3]int) ([]int, error) {
	directed := make(map[[2]int]bool, 3*len(tris))
	for _, t := range tris {
		for i := range 3 {
			directed[[2]int{t[i], t[(i+1)%3]}] = true
		}
	}

	next := make(map[int]int)
	start := -1
	for e := range directed {
		if directed[[2]int{e[1], e[0]}] {
			continue
		}
		if _, ok := next[e[0]]; ok {
			return nil, errors.Errorf("reference: hull vertex %d has two outgoing boundary edges", e[0])
		}
		next[e[0]] = e[1]
		if start < 0 || e[0] < start {
			start = e[0]
		}
	}
	if start < 0 {
		return nil, errors.New("reference: triangulation has no boundary")
	}

	loop := []int{start}
	for v := next[start]; v != start; {
		if len(loop) >= len(next) {
			return nil, errors.New("reference: hull boundary does not close")
		}
		loop = append(loop, v)
		nv, ok := next[v]
		if !ok {
			return nil, errors.Errorf("reference: hull boundary ends at vertex %d", v)
		}
		v = nv
	}
	if len(loop) != len(next) {
		return nil, errors.Errorf("reference: hull boundary splits into several loops (%d of %d edges walked)",
			len(loop), len(next))
	}
	return loop, nil
}
