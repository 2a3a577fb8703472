package predicates_test

import (
	"testing"

	"github.com/planarcdt/cdt/predicates"
	"github.com/planarcdt/cdt/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) types.Point { return types.Point{X: x, Y: y} }

func TestCCW(t *testing.T) {
	assert.Equal(t, 1, predicates.CCW(pt(0, 0), pt(1, 0), pt(0, 1)))
	assert.Equal(t, -1, predicates.CCW(pt(0, 0), pt(0, 1), pt(1, 0)))
	assert.Equal(t, 0, predicates.CCW(pt(0, 0), pt(1, 0), pt(2, 0)))
}

func TestInCircumcircle(t *testing.T) {
	a, b, c := pt(0, 0), pt(1, 0), pt(0, 1)
	require.Equal(t, 1, predicates.CCW(a, b, c), "fixture must be CCW")

	assert.True(t, predicates.InCircumcircle(a, b, c, pt(0.1, 0.1)))
	assert.False(t, predicates.InCircumcircle(a, b, c, pt(5, 5)))
}

func TestInCircumcircleCocircular(t *testing.T) {
	// Four corners of the unit square are exactly cocircular.
	a, b, c := pt(0, 0), pt(1, 0), pt(1, 1)
	require.Equal(t, 1, predicates.CCW(a, b, c))
	assert.False(t, predicates.InCircumcircle(a, b, c, pt(0, 1)),
		"cocircular point must not strictly violate the Delaunay property")
}

func TestIsQuadrilateralConvex(t *testing.T) {
	assert.True(t, predicates.IsQuadrilateralConvex(pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)))
	// A reflex quadrilateral (one vertex pulled toward the centroid).
	assert.False(t, predicates.IsQuadrilateralConvex(pt(0, 0), pt(1, 0), pt(0.5, 0.1), pt(0, 1)))
}

func TestPointInTriangle(t *testing.T) {
	a, b, c := pt(0, 0), pt(1, 0), pt(0, 1)
	assert.True(t, predicates.PointInTriangle(pt(0.2, 0.2), a, b, c))
	assert.True(t, predicates.PointInTriangle(pt(0, 0), a, b, c), "vertex counts as inside")
	assert.True(t, predicates.PointInTriangle(pt(0.5, 0), a, b, c), "edge point counts as inside")
	assert.False(t, predicates.PointInTriangle(pt(2, 2), a, b, c))
}

func TestSegmentIntersect(t *testing.T) {
	hit, ok := predicates.SegmentIntersect(pt(0, 0), pt(1, 1), pt(0, 1), pt(1, 0))
	require.True(t, ok)
	assert.InDelta(t, 0.5, hit.X, 1e-9)
	assert.InDelta(t, 0.5, hit.Y, 1e-9)

	_, ok = predicates.SegmentIntersect(pt(0, 0), pt(1, 0), pt(2, 0), pt(3, 0))
	assert.False(t, ok, "disjoint collinear segments do not intersect")
}

func TestSegmentIntersectSharedEndpoint(t *testing.T) {
	// Segments sharing an endpoint are treated as non-intersecting so the
	// constrained-edge walk does not emit a spurious crossing.
	_, ok := predicates.SegmentIntersect(pt(0, 0), pt(1, 1), pt(1, 1), pt(2, 0))
	assert.False(t, ok)
}

func TestPolygonAreaAndBounds(t *testing.T) {
	square := []types.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}
	assert.InDelta(t, 1.0, predicates.PolygonArea(square), 1e-12)

	bounds := predicates.PolygonBounds(square)
	assert.Equal(t, pt(0, 0), bounds.Min)
	assert.Equal(t, pt(1, 1), bounds.Max)
}

func TestPolygonSelfIntersects(t *testing.T) {
	simple := []types.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}
	assert.False(t, predicates.PolygonSelfIntersects(simple))

	bowtie := []types.Point{pt(0, 0), pt(1, 1), pt(1, 0), pt(0, 1)}
	assert.True(t, predicates.PolygonSelfIntersects(bowtie))
}

func TestPointInPolygonRayCast(t *testing.T) {
	square := []types.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}
	assert.True(t, predicates.PointInPolygonRayCast(pt(0.5, 0.5), square, 1e-9))
	assert.False(t, predicates.PointInPolygonRayCast(pt(2, 2), square, 1e-9))
	assert.True(t, predicates.PointInPolygonRayCast(pt(0, 0.5), square, 1e-9), "boundary point counts as inside")
}
