package cdt

import "github.com/pkg/errors"

var (
	// ErrTooFewPoints signals fewer than 3 input points (§7 contract violation).
	ErrTooFewPoints = errors.New("cdt: fewer than 3 input points")

	// ErrCollinearInput signals that the input point cloud is entirely
	// collinear, which the point-location walk cannot triangulate (§7).
	ErrCollinearInput = errors.New("cdt: input points are collinear")

	// ErrPolygonTooShort signals a hole polygon with fewer than 3 vertices.
	ErrPolygonTooShort = errors.New("cdt: hole polygon has fewer than 3 vertices")

	// ErrWalkLeftTriangulation signals that a point-location walk crossed a
	// NilTri adjacency, meaning the query point is outside the current
	// triangulation. This should never occur because the supertriangle
	// contains every normalized input point; if it does, an invariant is
	// broken.
	ErrWalkLeftTriangulation = errors.New("cdt: point-location walk left the triangulation")

	// ErrNoContainingAngle signals that no triangle incident to a vertex
	// has that vertex's interior angle containing the requested ray.
	ErrNoContainingAngle = errors.New("cdt: no triangle contains the requested ray at its endpoint")

	// ErrConstraintDidNotConverge signals that constrained-edge insertion
	// exceeded its iteration budget without reaching full convexity,
	// indicating a non-simple or self-intersecting input polygon.
	ErrConstraintDidNotConverge = errors.New("cdt: constrained edge insertion did not converge")
)
