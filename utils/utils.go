// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides helpers for producing planar site sets: seeded random generation and
// reading coordinate pairs from text.

package utils

import (
	"bufio"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/2dChan/r2voronoi/geom"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// GenerateRandomPoints generates cnt points uniformly distributed in the square [0, box)².
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, box float64, seed int64) []geom.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make([]geom.Point, cnt)

	for i := range cnt {
		sites[i] = geom.Point{
			X: random.Float64() * box,
			Y: random.Float64() * box,
		}
	}

	return sites
}

// ReadPoints reads one point per line, given as two whitespace-separated coordinates.
// Blank lines are skipped. Every malformed line is reported in the returned error.
func ReadPoints(r io.Reader) ([]geom.Point, error) {
	var (
		sites []geom.Point
		errs  error
	)

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			errs = multierr.Append(errs, errors.Errorf("line %d: want 2 coordinates, got %d", line, len(fields)))
			continue
		}

		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if err := multierr.Combine(errX, errY); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "line %d", line))
			continue
		}
		sites = append(sites, geom.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		errs = multierr.Append(errs, errors.Wrap(err, "reading points"))
	}

	if errs != nil {
		return nil, errs
	}
	return sites, nil
}
