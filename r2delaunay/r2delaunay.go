// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay computes an approximate planar Delaunay triangulation. Candidate triangles
// are restricted to sites that share a cutoff-based neighbor relation and are accepted when
// their circumcircle contains no other site of the whole set.

package r2delaunay

import (
	"slices"

	"github.com/2dChan/r2voronoi/geom"
	"github.com/2dChan/r2voronoi/neighbors"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultEps     = geom.DefaultEps
	defaultWorkers = 1
)

// Edge is an undirected triangulation edge stored as (min, max) site indices.
type Edge [2]int

// NewEdge returns the normalized edge between sites i and j.
func NewEdge(i, j int) Edge {
	if i > j {
		i, j = j, i
	}
	return Edge{i, j}
}

type Triangulation struct {
	Sites []geom.Point
	// NOTE: Sorted, each edge once.
	Edges []Edge
	// NOTE: Sorted, vertex indices ascending within each triangle.
	Triangles [][3]int
	// NOTE: Symmetric view of Edges, sorted by index per site.
	AdjacencyIndices []int
	AdjacencyOffsets []int
}

// NumSites returns the number of sites.
func (dt *Triangulation) NumSites() int {
	return len(dt.Sites)
}

// Neighbors returns the sites joined to site i by an edge, in ascending order.
func (dt *Triangulation) Neighbors(i int) []int {
	if i < 0 || i+1 >= len(dt.AdjacencyOffsets) {
		panic("Neighbors: site index out of range")
	}
	start := dt.AdjacencyOffsets[i]
	end := dt.AdjacencyOffsets[i+1]
	return dt.AdjacencyIndices[start:end]
}

func (dt *Triangulation) TriangleVertices(tIdx int) (geom.Point, geom.Point, geom.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Sites[t[0]], dt.Sites[t[1]], dt.Sites[t[2]]
}

// EdgeLines returns every edge as a line from its lower to its higher site index.
func (dt *Triangulation) EdgeLines() []geom.Line {
	lines := make([]geom.Line, len(dt.Edges))
	for i, e := range dt.Edges {
		lines[i] = geom.NewLine(dt.Sites[e[0]], dt.Sites[e[1]])
	}
	return lines
}

type TriangulationOptions struct {
	Eps     float64
	Workers int
	Logger  *zap.Logger
}

type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the collinearity tolerance used by the circumcircle computation.
// Zero selects exact comparison.
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps < 0 || eps >= 1 {
			return errors.Errorf("WithEps: eps must be in [0, 1), got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// WithWorkers sets how many sites are processed concurrently.
func WithWorkers(n int) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if n < 1 {
			return errors.Errorf("WithWorkers: n must be positive, got %d", n)
		}
		o.Workers = n
		return nil
	}
}

func WithLogger(logger *zap.Logger) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if logger == nil {
			return errors.New("WithLogger: logger must not be nil")
		}
		o.Logger = logger
		return nil
	}
}

// ComputeTriangulation builds the first-order neighbor map of sites for cutoff and
// triangulates it.
func ComputeTriangulation(sites []geom.Point, cutoff float64, setters ...TriangulationOption) (*Triangulation, error) {
	if err := geom.CheckSites(len(sites)); err != nil {
		return nil, errors.Wrap(err, "r2delaunay")
	}
	return NewTriangulation(sites, neighbors.New(sites, cutoff), setters...)
}

// NewTriangulation triangulates sites. For every site i and every pair j, k of its first-order
// neighbors in nm, the triangle (i, j, k) is accepted when no other site lies strictly inside
// its circumcircle. Collinear candidate triples are reported as geom.ErrDegenerateGeometry.
func NewTriangulation(sites []geom.Point, nm *neighbors.Map, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps:     defaultEps,
		Workers: defaultWorkers,
		Logger:  zap.NewNop(),
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numSites := len(sites)
	if err := geom.CheckSites(numSites); err != nil {
		return nil, errors.Wrap(err, "r2delaunay")
	}
	if nm == nil || nm.Len() != numSites {
		return nil, errors.New("r2delaunay: neighbor map does not match sites")
	}

	accepted := make([][][3]int, numSites)
	siteErrs := make([]error, numSites)
	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for i := range numSites {
		g.Go(func() error {
			accepted[i], siteErrs[i] = emptyCircleTriangles(sites, i, nm.Of(i), opts.Eps)
			return siteErrs[i]
		})
	}
	if err := g.Wait(); err != nil {
		// Report the lowest failing site so the error does not depend on scheduling.
		if i := slices.IndexFunc(siteErrs, func(e error) bool { return e != nil }); i >= 0 {
			return nil, siteErrs[i]
		}
		return nil, err
	}

	var triangles [][3]int
	for _, tris := range accepted {
		triangles = append(triangles, tris...)
	}
	slices.SortFunc(triangles, compareTriangles)
	triangles = slices.Compact(triangles)

	edges := make([]Edge, 0, 3*len(triangles))
	for _, t := range triangles {
		edges = append(edges, Edge{t[0], t[1]}, Edge{t[0], t[2]}, Edge{t[1], t[2]})
	}
	slices.SortFunc(edges, compareEdges)
	edges = slices.Compact(edges)

	dt := &Triangulation{
		Sites:            sites,
		Edges:            edges,
		Triangles:        triangles,
		AdjacencyIndices: make([]int, 2*len(edges)),
		AdjacencyOffsets: make([]int, numSites+1),
	}

	for _, e := range edges {
		dt.AdjacencyOffsets[e[0]+1]++
		dt.AdjacencyOffsets[e[1]+1]++
	}
	for i := range numSites {
		dt.AdjacencyOffsets[i+1] += dt.AdjacencyOffsets[i]
	}

	nxt := make([]int, numSites)
	copy(nxt, dt.AdjacencyOffsets[:numSites])
	for _, e := range edges {
		dt.AdjacencyIndices[nxt[e[0]]] = e[1]
		nxt[e[0]]++
		dt.AdjacencyIndices[nxt[e[1]]] = e[0]
		nxt[e[1]]++
	}

	opts.Logger.Debug("triangulation computed",
		zap.Int("sites", numSites),
		zap.Int("edges", len(edges)),
		zap.Int("triangles", len(triangles)),
		zap.Int("workers", opts.Workers))

	return dt, nil
}

// emptyCircleTriangles returns the sorted triples (i, j, k), j and k taken from nbrs, whose
// circumcircle holds no other site.
func emptyCircleTriangles(sites []geom.Point, i int, nbrs []int, eps float64) ([][3]int, error) {
	var tris [][3]int
	for a, j := range nbrs {
		for _, k := range nbrs[a+1:] {
			c, err := geom.CircleThrough(sites[i], sites[j], sites[k], eps)
			if err != nil {
				return nil, errors.Wrapf(err, "r2delaunay: sites %d, %d, %d", i, j, k)
			}
			if isEmptyCircle(sites, c, i, j, k) {
				t := [3]int{i, j, k}
				slices.Sort(t[:])
				tris = append(tris, t)
			}
		}
	}
	return tris, nil
}

func isEmptyCircle(sites []geom.Point, c geom.Circle, i, j, k int) bool {
	for v, p := range sites {
		if v == i || v == j || v == k {
			continue
		}
		if c.ContainsStrict(p) {
			return false
		}
	}
	return true
}

func compareTriangles(a, b [3]int) int {
	return slices.Compare(a[:], b[:])
}

func compareEdges(a, b Edge) int {
	return slices.Compare(a[:], b[:])
}
