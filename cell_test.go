// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Cell

func TestDiagram_Cell(t *testing.T) {
	vd := mustNewDiagram(t, 50)
	if _, err := vd.Cell(-1); err == nil {
		t.Errorf("vd.Cell(-1) error = nil, want non-nil")
	}
	if _, err := vd.Cell(vd.NumCells()); err == nil {
		t.Errorf("vd.Cell(%d) error = nil, want non-nil", vd.NumCells())
	}
}

func TestCell_SiteIndex(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	for i := range vd.Sites {
		c, err := vd.Cell(i)
		if err != nil {
			t.Fatalf("vd.Cell(%d) error = %v, want nil", i, err)
		}
		if got := c.SiteIndex(); got != i {
			t.Errorf("c.SiteIndex() = %v, want %v", got, i)
		}
	}
}

func TestCell_Site(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	for i, want := range vd.Sites {
		c, err := vd.Cell(i)
		if err != nil {
			t.Fatalf("vd.Cell(%d) error = %v, want nil", i, err)
		}
		if got := c.Site(); got != want {
			t.Errorf("c.Site() = %v, want %v", got, want)
		}
	}
}

func TestCell_NumSegments(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	for i := range vd.Sites {
		c, err := vd.Cell(i)
		if err != nil {
			t.Fatalf("vd.Cell(%d) error = %v, want nil", i, err)
		}
		want := vd.CellOffsets[i+1] - vd.CellOffsets[i]
		if got := c.NumSegments(); got != want {
			t.Errorf("c.NumSegments() = %v, want %v", got, want)
		}
	}
}

func TestCell_Segments(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	for i := range vd.Sites {
		c, err := vd.Cell(i)
		if err != nil {
			t.Fatalf("vd.Cell(%d) error = %v, want nil", i, err)
		}
		want := vd.Segments[vd.CellOffsets[i]:vd.CellOffsets[i+1]]
		if diff := cmp.Diff(want, c.Segments()); diff != "" {
			t.Errorf("c.Segments() mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestCell_Segment(t *testing.T) {
	vd := mustNewDiagram(t, 100)
	for i := range vd.Sites {
		c, err := vd.Cell(i)
		if err != nil {
			t.Fatalf("vd.Cell(%d) error = %v, want nil", i, err)
		}
		for j, want := range c.Segments() {
			got, err := c.Segment(j)
			if err != nil {
				t.Fatalf("c.Segment(%d) error = %v, want nil", j, err)
			}
			if got != want {
				t.Errorf("c.Segment(%d) = %v, want %v", j, got, want)
			}
		}

		if _, err := c.Segment(-1); err == nil {
			t.Errorf("c.Segment(-1) error = nil, want non-nil")
		}
		if _, err := c.Segment(c.NumSegments()); err == nil {
			t.Errorf("c.Segment(%d) error = nil, want non-nil", c.NumSegments())
		}
	}
}
