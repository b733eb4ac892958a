// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hull

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/2dChan/r2voronoi/geom"
	"github.com/2dChan/r2voronoi/reference"
	"github.com/2dChan/r2voronoi/utils"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"go.uber.org/zap/zaptest"
)

func TestWithLogger(t *testing.T) {
	if err := WithLogger(nil)(&Options{}); err == nil {
		t.Errorf("WithLogger(nil) error = nil, want non-nil")
	}
}

func TestNew_Square(t *testing.T) {
	sites := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	h, err := New(sites, WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}

	if diff := cmp.Diff([]int{0, 1, 2, 3}, h.Indices); diff != "" {
		t.Errorf("h.Indices mismatch (-want +got):\n%s", diff)
	}
	if got := h.NumEdges(); got != 4 {
		t.Errorf("h.NumEdges() = %v, want 4", got)
	}
	if got := h.Perimeter(); math.Abs(got-4) > 1e-9 {
		t.Errorf("h.Perimeter() = %v, want 4", got)
	}
	assertClosed(t, h)
}

func TestNew_InteriorPoints(t *testing.T) {
	sites := []geom.Point{
		{X: 2, Y: 2}, {X: 0, Y: 0}, {X: 1, Y: 3}, {X: 4, Y: 0},
		{X: 2, Y: 1}, {X: 4, Y: 4}, {X: 3, Y: 2}, {X: 0, Y: 4},
	}
	h, err := New(sites)
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	if diff := cmp.Diff([]int{1, 3, 5, 7}, h.Indices); diff != "" {
		t.Errorf("h.Indices mismatch (-want +got):\n%s", diff)
	}
	if got := h.Perimeter(); math.Abs(got-16) > 1e-9 {
		t.Errorf("h.Perimeter() = %v, want 16", got)
	}
}

func TestNew_DoesNotModifySites(t *testing.T) {
	sites := utils.GenerateRandomPoints(50, 20, 7)
	want := slices.Clone(sites)
	if _, err := New(sites); err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	if diff := cmp.Diff(want, sites); diff != "" {
		t.Errorf("New(...) modified sites (-want +got):\n%s", diff)
	}
}

func TestNew_InsufficientSites(t *testing.T) {
	for n := range 3 {
		sites := utils.GenerateRandomPoints(n, 20, 0)
		if _, err := New(sites); !errors.Is(err, geom.ErrInsufficientSites) {
			t.Errorf("New(%d sites) error = %v, want %v", n, err, geom.ErrInsufficientSites)
		}
	}
}

func TestNew_Collinear(t *testing.T) {
	sites := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	h, err := New(sites)
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, h.Indices); diff != "" {
		t.Errorf("h.Indices mismatch (-want +got):\n%s", diff)
	}
	assertClosed(t, h)
}

func TestNew_DuplicateSite(t *testing.T) {
	sites := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	h, err := New(sites)
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	if diff := cmp.Diff([]int{0, 1, 3}, h.Indices); diff != "" {
		t.Errorf("h.Indices mismatch (-want +got):\n%s", diff)
	}
	if got, want := h.Perimeter(), 2+math.Sqrt2; math.Abs(got-want) > 1e-9 {
		t.Errorf("h.Perimeter() = %v, want %v", got, want)
	}
}

func TestNew_AllDuplicates(t *testing.T) {
	sites := []geom.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}}
	if _, err := New(sites); !errors.Is(err, geom.ErrDegenerateGeometry) {
		t.Errorf("New(...) error = %v, want %v", err, geom.ErrDegenerateGeometry)
	}
}

func TestNew_Convex(t *testing.T) {
	sites := utils.GenerateRandomPoints(300, 20, 8)
	h, err := New(sites)
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	assertClosed(t, h)
	for i, e := range h.Edges {
		for j, p := range sites {
			if e.Direction().Cross(p.Sub(e.Src)) < -1e-9 {
				t.Errorf("site %d lies right of hull edge %d = %v", j, i, e)
			}
		}
	}
}

func TestNew_MatchesReference(t *testing.T) {
	sites := utils.GenerateRandomPoints(500, 20, 0)
	h, err := New(sites)
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	ref, err := reference.Triangulate(sites)
	if err != nil {
		t.Fatalf("reference.Triangulate(...) error = %v, want nil", err)
	}

	want := undirected(ref.HullEdges())
	got := undirected(h.Edges)
	less := func(a, b geom.Line) bool {
		ka := [4]float64{a.Src.X, a.Src.Y, a.Dst.X, a.Dst.Y}
		kb := [4]float64{b.Src.X, b.Src.Y, b.Dst.X, b.Dst.Y}
		return slices.Compare(ka[:], kb[:]) < 0
	}
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less)); diff != "" {
		t.Errorf("hull edges mismatch with reference (-want +got):\n%s", diff)
	}
}

// Benchmarks

func BenchmarkNew(b *testing.B) {
	sizes := []int{5e+2, 5e+3, 1e+4}
	for _, pointsCnt := range sizes {
		b.Run(fmt.Sprintf("N%d", pointsCnt), func(b *testing.B) {
			sites := utils.GenerateRandomPoints(pointsCnt, 100, 0)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := New(sites); err != nil {
					b.Fatalf("New(...) error = %v, want nil", err)
				}
			}
		})
	}
}

func BenchmarkReference(b *testing.B) {
	sizes := []int{5e+2, 5e+3, 1e+4}
	for _, pointsCnt := range sizes {
		b.Run(fmt.Sprintf("N%d", pointsCnt), func(b *testing.B) {
			sites := utils.GenerateRandomPoints(pointsCnt, 100, 0)

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := reference.Triangulate(sites); err != nil {
					b.Fatalf("reference.Triangulate(...) error = %v, want nil", err)
				}
			}
		})
	}
}

// Helpers

func assertClosed(t *testing.T, h *Hull) {
	t.Helper()
	n := len(h.Edges)
	if n != len(h.Indices) {
		t.Fatalf("len(h.Edges) = %v, len(h.Indices) = %v, want equal", n, len(h.Indices))
	}
	for i, e := range h.Edges {
		if e.Src != h.Sites[h.Indices[i]] {
			t.Errorf("h.Edges[%d].Src = %v, want %v", i, e.Src, h.Sites[h.Indices[i]])
		}
		if next := h.Edges[(i+1)%n]; e.Dst != next.Src {
			t.Errorf("h.Edges[%d].Dst = %v, want %v", i, e.Dst, next.Src)
		}
	}
}

// undirected orders each line's endpoints so that Src sorts first.
func undirected(lines []geom.Line) []geom.Line {
	out := make([]geom.Line, len(lines))
	for i, l := range lines {
		if l.Dst.X < l.Src.X || l.Dst.X == l.Src.X && l.Dst.Y < l.Src.Y {
			l = l.Reversed()
		}
		out[i] = l
	}
	return out
}
