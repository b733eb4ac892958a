// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package neighbors builds cutoff-radius neighbor relations over a set of sites.

package neighbors

import (
	"slices"

	"github.com/2dChan/r2voronoi/geom"
	"github.com/golang/geo/r3"
)

// Map holds, for every site index, the indices of its neighbors in discovery order.
type Map struct {
	Neighbors [][]int
}

// Build returns the first-order neighbor map of sites: j is a neighbor of i when
// dist(sites[i], sites[j]) is strictly less than cutoff. The relation is symmetric.
func Build[P any](sites []P, cutoff float64, dist func(a, b P) float64) *Map {
	n := len(sites)
	m := &Map{Neighbors: make([][]int, n)}
	for i := range n {
		for j := i + 1; j < n; j++ {
			if dist(sites[i], sites[j]) < cutoff {
				m.Neighbors[i] = append(m.Neighbors[i], j)
				m.Neighbors[j] = append(m.Neighbors[j], i)
			}
		}
	}
	return m
}

// New returns the first-order neighbor map of planar sites.
func New(sites []geom.Point, cutoff float64) *Map {
	return Build(sites, cutoff, geom.Distance)
}

// NewR3 returns the first-order neighbor map of sites in space.
func NewR3(sites []r3.Vector, cutoff float64) *Map {
	return Build(sites, cutoff, func(a, b r3.Vector) float64 {
		return a.Distance(b)
	})
}

// Len returns the number of sites.
func (m *Map) Len() int {
	return len(m.Neighbors)
}

// Of returns the neighbors of site i.
func (m *Map) Of(i int) []int {
	if i < 0 || i >= len(m.Neighbors) {
		panic("Of: site index out of range")
	}
	return m.Neighbors[i]
}

// Second returns the second-order map: for every site, the neighbors of its neighbors that are
// neither the site itself nor one of its first-order neighbors, each listed once.
func (m *Map) Second() *Map {
	n := len(m.Neighbors)
	second := &Map{Neighbors: make([][]int, n)}
	seen := make([]int, n)
	for i := range seen {
		seen[i] = -1
	}

	for i, first := range m.Neighbors {
		seen[i] = i
		for _, j := range first {
			seen[j] = i
		}
		for _, j := range first {
			for _, k := range m.Neighbors[j] {
				if seen[k] == i {
					continue
				}
				seen[k] = i
				second.Neighbors[i] = append(second.Neighbors[i], k)
			}
		}
	}
	return second
}

// IsSymmetric reports whether j lists i for every i that lists j.
func (m *Map) IsSymmetric() bool {
	for i, ns := range m.Neighbors {
		for _, j := range ns {
			if j < 0 || j >= len(m.Neighbors) || !slices.Contains(m.Neighbors[j], i) {
				return false
			}
		}
	}
	return true
}

// AdjacencyMatrix returns the relation as a dense 0/1 matrix.
func (m *Map) AdjacencyMatrix() [][]uint8 {
	n := len(m.Neighbors)
	mat := make([][]uint8, n)
	for i, ns := range m.Neighbors {
		mat[i] = make([]uint8, n)
		for _, j := range ns {
			mat[i][j] = 1
		}
	}
	return mat
}
