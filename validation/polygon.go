// Package validation implements the §7 contract-violation checks for
// polygon input: vertex count, winding, self-intersection, and bounding-box
// containment.
package validation

import (
	"github.com/pkg/errors"

	"github.com/planarcdt/cdt/predicates"
	"github.com/planarcdt/cdt/types"
)

// PolygonConfig holds validation options for a polygon loop.
type PolygonConfig struct {
	RequireCCW            bool
	AllowSelfIntersection bool
	Bounds                *types.AABB // if non-nil, every vertex must lie within
	Epsilon               types.Epsilon
}

// PolygonOption configures polygon validation.
type PolygonOption func(*PolygonConfig)

// WithRequireCCW requires counter-clockwise winding.
func WithRequireCCW(require bool) PolygonOption {
	return func(c *PolygonConfig) { c.RequireCCW = require }
}

// WithAllowSelfIntersection allows self-intersecting polygons.
func WithAllowSelfIntersection(allow bool) PolygonOption {
	return func(c *PolygonConfig) { c.AllowSelfIntersection = allow }
}

// WithBounds requires every vertex to lie within b, widened by the
// configured Epsilon to tolerate floating-point noise at the boundary.
func WithBounds(b types.AABB) PolygonOption {
	return func(c *PolygonConfig) { c.Bounds = &b }
}

// WithEpsilon overrides the tolerance used for the bounds check. The
// default is types.DefaultEpsilon().
func WithEpsilon(e types.Epsilon) PolygonOption {
	return func(c *PolygonConfig) { c.Epsilon = e }
}

// ValidatePolygon checks a polygon loop against the given configuration,
// returning the first contract violation encountered.
func ValidatePolygon(poly []types.Point, opts ...PolygonOption) error {
	cfg := PolygonConfig{Epsilon: types.DefaultEpsilon()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(poly) < 3 {
		return errors.Wrapf(ErrTooFewVertices, "got %d", len(poly))
	}

	area := predicates.PolygonArea(poly)
	if cfg.RequireCCW && area <= 0 {
		return errors.Wrapf(ErrNotCCW, "area=%g", area)
	}

	if !cfg.AllowSelfIntersection && predicates.PolygonSelfIntersects(poly) {
		return ErrSelfIntersects
	}

	if cfg.Bounds != nil {
		tol := cfg.Epsilon.TolForPoints(poly...)
		bounds := cfg.Bounds.Expand(tol)
		for i, p := range poly {
			if !bounds.Contains(p) {
				return errors.Wrapf(ErrOutsideBounds, "vertex %d (%v) outside %v", i, p, *cfg.Bounds)
			}
		}
	}

	return nil
}
