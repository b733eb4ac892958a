// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package hull computes the convex hull of planar sites by gift wrapping.

package hull

import (
	"math"
	"slices"

	"github.com/2dChan/r2voronoi/geom"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Hull struct {
	Sites []geom.Point
	// NOTE: Counter-clockwise, starting at the leftmost site; the start is not repeated.
	Indices []int
	// NOTE: Edges[i] runs from Sites[Indices[i]] to the next hull vertex.
	Edges []geom.Line
}

func (h *Hull) NumEdges() int {
	return len(h.Edges)
}

// Perimeter returns the total length of the hull edges.
func (h *Hull) Perimeter() float64 {
	var p float64
	for _, e := range h.Edges {
		p += e.Length()
	}
	return p
}

type Options struct {
	Logger *zap.Logger
}

type Option func(*Options) error

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) error {
		if logger == nil {
			return errors.New("WithLogger: logger must not be nil")
		}
		o.Logger = logger
		return nil
	}
}

// New computes the convex hull of sites by gift wrapping. Sites are visited in ascending x
// order, ties kept in input order. The walk starts at the leftmost site with a reference
// direction pointing straight down and repeatedly takes the candidate reached by the smallest
// counter-clockwise turn, the first one seen on ties. Candidates coinciding with the current
// site never win. The sites slice is not modified.
func New(sites []geom.Point, setters ...Option) (*Hull, error) {
	opts := Options{
		Logger: zap.NewNop(),
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	n := len(sites)
	if err := geom.CheckSites(n); err != nil {
		return nil, errors.Wrap(err, "hull")
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case sites[a].X < sites[b].X:
			return -1
		case sites[a].X > sites[b].X:
			return 1
		}
		return 0
	})

	h := &Hull{Sites: sites}
	start := order[0]
	ref := geom.NewLine(sites[start], geom.Point{X: sites[start].X, Y: sites[start].Y - 1})
	cur, prev := start, -1
	for step := 0; ; step++ {
		if step == n {
			return nil, &geom.DegenerateError{Op: "hull.New", Reason: "walk does not return to the start"}
		}

		best, bestAngle := -1, math.Inf(1)
		for _, j := range order {
			if j == cur || j == prev {
				continue
			}
			cand := geom.NewLine(sites[cur], sites[j])
			if cand.Length() == 0 {
				continue
			}
			if a := geom.AngleBetween(ref, cand); a < bestAngle {
				best, bestAngle = j, a
			}
		}
		if best < 0 {
			return nil, &geom.DegenerateError{Op: "hull.New", Reason: "no candidate distinct from the current site"}
		}

		ref = geom.NewLine(sites[cur], sites[best])
		h.Indices = append(h.Indices, cur)
		h.Edges = append(h.Edges, ref)
		opts.Logger.Debug("hull step",
			zap.Int("from", cur),
			zap.Int("to", best),
			zap.Float64("turn", bestAngle))

		prev, cur = cur, best
		if cur == start {
			break
		}
	}

	return h, nil
}
