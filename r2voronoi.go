// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"math"
	"slices"

	"github.com/2dChan/r2voronoi/geom"
	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultEps = geom.DefaultEps
	// DefaultMaxEdgeLength drops the long edges produced by open cells on the boundary of
	// the site set.
	DefaultMaxEdgeLength = 2.0
)

type Diagram struct {
	Sites []geom.Point

	// NOTE: Grouped per cell, in angular order of the cell's neighbors. Edges shared by two
	// cells appear once for each.
	Segments    []geom.Line
	CellOffsets []int
}

func (d *Diagram) NumCells() int {
	return len(d.Sites)
}

// Cell returns the cell for site i, or an error if i is out of range.
func (d *Diagram) Cell(i int) (Cell, error) {
	if i < 0 || i >= d.NumCells() {
		return Cell{}, errors.Errorf("Cell: index %d out of range [0 %d)", i, d.NumCells())
	}
	return Cell{idx: i, d: d}, nil
}

type DiagramOptions struct {
	Eps           float64
	MaxEdgeLength float64
	Bounds        r2.Rect
	Logger        *zap.Logger
}

type DiagramOption func(*DiagramOptions) error

// WithEps sets the tolerance below which two bisectors count as parallel.
// Zero selects exact comparison.
func WithEps(eps float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if eps < 0 || eps >= 1 {
			return errors.Errorf("WithEps: eps must be in [0, 1), got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// WithMaxEdgeLength sets the length above which cell edges are dropped. +Inf keeps every edge.
func WithMaxEdgeLength(length float64) DiagramOption {
	return func(o *DiagramOptions) error {
		if !(length > 0) {
			return errors.Errorf("WithMaxEdgeLength: length must be positive, got %v", length)
		}
		o.MaxEdgeLength = length
		return nil
	}
}

// WithBounds clips every cell edge against rect; edges outside it are dropped.
func WithBounds(rect r2.Rect) DiagramOption {
	return func(o *DiagramOptions) error {
		if rect.IsEmpty() {
			return errors.New("WithBounds: rect must not be empty")
		}
		o.Bounds = rect
		return nil
	}
}

func WithLogger(logger *zap.Logger) DiagramOption {
	return func(o *DiagramOptions) error {
		if logger == nil {
			return errors.New("WithLogger: logger must not be nil")
		}
		o.Logger = logger
		return nil
	}
}

// ComputeDiagram runs the whole pipeline: neighbor map, triangulation, diagram.
func ComputeDiagram(sites []geom.Point, cutoff float64, setters ...DiagramOption) (*Diagram, error) {
	dt, err := r2delaunay.ComputeTriangulation(sites, cutoff)
	if err != nil {
		return nil, err
	}
	return NewDiagram(dt, setters...)
}

// NewDiagram builds the Voronoi cell edges of every site of dt. Each edge lies on the
// perpendicular bisector between the site and one of its triangulation neighbors, trimmed by
// the bisectors of the angularly adjacent neighbors.
func NewDiagram(dt *r2delaunay.Triangulation, setters ...DiagramOption) (*Diagram, error) {
	opts := DiagramOptions{
		Eps:           defaultEps,
		MaxEdgeLength: DefaultMaxEdgeLength,
		Bounds:        r2.EmptyRect(),
		Logger:        zap.NewNop(),
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	if dt == nil {
		return nil, errors.New("r2voronoi: nil triangulation")
	}

	numSites := dt.NumSites()
	d := &Diagram{
		Sites:       dt.Sites,
		CellOffsets: make([]int, numSites+1),
	}

	for i := range numSites {
		edges, err := cellEdges(dt, i, opts.Eps)
		if err != nil {
			return nil, errors.Wrapf(err, "r2voronoi: cell %d", i)
		}

		kept := 0
		for _, e := range edges {
			if e.Length() > opts.MaxEdgeLength {
				continue
			}
			if !opts.Bounds.IsEmpty() {
				var ok bool
				if e, ok = clip(e, opts.Bounds); !ok {
					continue
				}
			}
			d.Segments = append(d.Segments, e)
			kept++
		}
		d.CellOffsets[i+1] = d.CellOffsets[i] + kept

		opts.Logger.Debug("cell closed",
			zap.Int("site", i),
			zap.Int("neighbors", len(edges)),
			zap.Int("edges", kept))
	}

	return d, nil
}

// cellEdges returns the trimmed bisectors around site i in angular order of its neighbors.
func cellEdges(dt *r2delaunay.Triangulation, i int, eps float64) ([]geom.Line, error) {
	site := dt.Sites[i]
	nbrs := dt.Neighbors(i)
	n := len(nbrs)
	if n == 0 {
		return nil, nil
	}

	spokes := make([]geom.Line, n)
	for k, j := range nbrs {
		spokes[k] = geom.NewLine(site, dt.Sites[j])
		if spokes[k].Length() == 0 {
			return nil, &geom.DegenerateError{Op: "NewDiagram", Reason: "zero-length spoke to a duplicate site"}
		}
	}
	slices.SortStableFunc(spokes, func(a, b geom.Line) int {
		return cmpFloat(a.Angle(), b.Angle())
	})

	bisectors := make([]geom.Line, n)
	for k, s := range spokes {
		bisectors[k] = s.PerpendicularBisector()
	}

	// vertices[k] closes the corner between bisectors k and k+1.
	vertices := make([]geom.Point, n)
	for k := range n {
		next := (k + 1) % n
		p, ok := geom.Intersection(bisectors[k], bisectors[next], eps)
		if !ok {
			return nil, &geom.DegenerateError{
				Op:     "NewDiagram",
				Reason: "parallel bisectors " + bisectors[k].String() + " and " + bisectors[next].String(),
			}
		}
		vertices[k] = p
	}

	edges := make([]geom.Line, n)
	for k := range n {
		edges[k] = geom.NewLine(vertices[(k+n-1)%n], vertices[k])
	}
	return edges, nil
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// clip trims l to rect with the Liang-Barsky algorithm.
func clip(l geom.Line, rect r2.Rect) (geom.Line, bool) {
	d := l.Direction()
	t0, t1 := 0.0, 1.0
	for _, c := range [4][2]float64{
		{-d.X, l.Src.X - rect.X.Lo},
		{d.X, rect.X.Hi - l.Src.X},
		{-d.Y, l.Src.Y - rect.Y.Lo},
		{d.Y, rect.Y.Hi - l.Src.Y},
	} {
		p, q := c[0], c[1]
		if p == 0 {
			if q < 0 {
				return geom.Line{}, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
		if t0 > t1 {
			return geom.Line{}, false
		}
	}
	return geom.NewLine(l.Src.Add(d.Mul(t0)), l.Src.Add(d.Mul(t1))), true
}
