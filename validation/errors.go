package validation

import "github.com/pkg/errors"

var (
	// ErrTooFewVertices signals a polygon loop with fewer than 3 vertices.
	ErrTooFewVertices = errors.New("validation: polygon has fewer than 3 vertices")

	// ErrSelfIntersects signals a self-intersecting polygon loop.
	ErrSelfIntersects = errors.New("validation: polygon self-intersects")

	// ErrNotCCW signals a clockwise or degenerate-winding polygon loop.
	ErrNotCCW = errors.New("validation: polygon is not counter-clockwise")

	// ErrOutsideBounds signals a polygon vertex outside the required bounds.
	ErrOutsideBounds = errors.New("validation: polygon vertex lies outside the required bounds")
)
