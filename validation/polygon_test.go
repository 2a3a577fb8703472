package validation_test

import (
	"testing"

	"github.com/planarcdt/cdt/types"
	"github.com/planarcdt/cdt/validation"
	"github.com/stretchr/testify/assert"
)

func sq(x0, y0, x1, y1 float64) []types.Point {
	return []types.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestValidatePolygonRequireCCW(t *testing.T) {
	ccw := sq(0, 0, 1, 1)
	assert.NoError(t, validation.ValidatePolygon(ccw, validation.WithRequireCCW(true)))

	cw := []types.Point{ccw[0], ccw[3], ccw[2], ccw[1]}
	assert.ErrorIs(t, validation.ValidatePolygon(cw, validation.WithRequireCCW(true)), validation.ErrNotCCW)
}

func TestValidatePolygonSelfIntersection(t *testing.T) {
	bowtie := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	assert.ErrorIs(t, validation.ValidatePolygon(bowtie), validation.ErrSelfIntersects)
	assert.NoError(t, validation.ValidatePolygon(bowtie, validation.WithAllowSelfIntersection(true)))
}

func TestValidatePolygonBounds(t *testing.T) {
	bounds := types.AABB{Min: types.Point{X: 0, Y: 0}, Max: types.Point{X: 1, Y: 1}}
	inside := sq(0.2, 0.2, 0.8, 0.8)
	assert.NoError(t, validation.ValidatePolygon(inside, validation.WithBounds(bounds)))

	outside := sq(0.2, 0.2, 2, 2)
	assert.ErrorIs(t, validation.ValidatePolygon(outside, validation.WithBounds(bounds)), validation.ErrOutsideBounds)
}

func TestValidatePolygonTooFewVertices(t *testing.T) {
	assert.ErrorIs(t, validation.ValidatePolygon([]types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}), validation.ErrTooFewVertices)
}

func TestValidatePolygonBoundsToleratesEpsilonNoise(t *testing.T) {
	bounds := types.AABB{Min: types.Point{X: 0, Y: 0}, Max: types.Point{X: 1, Y: 1}}
	// A vertex a hair outside the exact bounds should still pass under the
	// default epsilon, which a bare AABB.Contains check would reject.
	noisy := []types.Point{
		{X: 0, Y: 0}, {X: 1 + 1e-13, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	assert.NoError(t, validation.ValidatePolygon(noisy, validation.WithBounds(bounds)))

	tight := validation.WithEpsilon(types.NewEpsilon(0, 0))
	assert.ErrorIs(t, validation.ValidatePolygon(noisy, validation.WithBounds(bounds), tight), validation.ErrOutsideBounds)
}
