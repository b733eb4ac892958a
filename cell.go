// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2voronoi builds planar Voronoi diagrams from the perpendicular bisectors of an
// approximate Delaunay triangulation.

package r2voronoi

import (
	"fmt"

	"github.com/2dChan/r2voronoi/geom"
)

// Cell represents a Voronoi cell. It is a view structure for accessing a cell in a Diagram.
// The cell's index corresponds to the index of its site in the Diagram's Sites.
type Cell struct {
	idx int
	d   *Diagram
}

// SiteIndex returns the index of the site in the Diagram's Sites.
func (c Cell) SiteIndex() int {
	return c.idx
}

// Site returns the site point of the cell.
func (c Cell) Site() geom.Point {
	return c.d.Sites[c.idx]
}

// NumSegments returns the number of edges kept for the cell.
func (c Cell) NumSegments() int {
	return c.d.CellOffsets[c.idx+1] - c.d.CellOffsets[c.idx]
}

// Segments returns the cell's edges, in angular order of the neighbors they separate it from.
func (c Cell) Segments() []geom.Line {
	return c.d.Segments[c.d.CellOffsets[c.idx]:c.d.CellOffsets[c.idx+1]]
}

// Segment returns the edge at the specified index.
// It returns an error if the index is out of range.
func (c Cell) Segment(i int) (geom.Line, error) {
	start := c.d.CellOffsets[c.idx]
	end := c.d.CellOffsets[c.idx+1]
	if i < 0 || i >= end-start {
		return geom.Line{}, fmt.Errorf("Segment: index %d out of range [0 %d)", i, end-start)
	}
	return c.d.Segments[start+i], nil
}
