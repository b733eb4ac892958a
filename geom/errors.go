// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package geom

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrDegenerateGeometry is matched by every *DegenerateError.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// ErrInsufficientSites is returned when fewer than MinSites sites are given.
	ErrInsufficientSites = errors.New("insufficient sites (minimum 3 required)")
)

// MinSites is the smallest site count a triangulation or hull is defined for.
const MinSites = 3

// DegenerateError reports input for which a geometric construction is undefined:
// collinear triples, parallel lines, zero-length lines.
type DegenerateError struct {
	Op     string
	Reason string
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrDegenerateGeometry, e.Reason)
}

// Is reports whether target is ErrDegenerateGeometry.
func (e *DegenerateError) Is(target error) bool {
	return target == ErrDegenerateGeometry
}

func degenerate(op, format string, args ...any) error {
	return &DegenerateError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// CheckSites returns ErrInsufficientSites if there are fewer than MinSites sites.
func CheckSites(n int) error {
	if n < MinSites {
		return errors.Wrapf(ErrInsufficientSites, "got %d", n)
	}
	return nil
}
