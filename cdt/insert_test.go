package cdt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planarcdt/cdt/cdt"
	"github.com/planarcdt/cdt/predicates"
)

func newSeededTriangleSet(t *testing.T) (*cdt.TriangleSet, cdt.TriID) {
	t.Helper()
	ts := cdt.NewTriangleSet(8)
	a := ts.AddPoint(pt(-100, -100))
	b := ts.AddPoint(pt(100, -100))
	c := ts.AddPoint(pt(0, 100))
	super := ts.AddTriangle(a, b, c, cdt.NilTri, cdt.NilTri, cdt.NilTri)
	return ts, super
}

func allLive(ts *cdt.TriangleSet) map[cdt.TriID]bool {
	live := make(map[cdt.TriID]bool, len(ts.Tris))
	for i := range ts.Tris {
		live[cdt.TriID(i)] = true
	}
	return live
}

func TestInsertPointSplitsAndLegalizes(t *testing.T) {
	ts, super := newSeededTriangleSet(t)
	idx, err := ts.InsertPoint(pt(0, 0))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, idx, 0)

	// The split plus the original triangle should yield three live
	// triangles (the original slot was reused, not tombstoned).
	assert.Len(t, ts.Tris, 3)
	assert.NoError(t, ts.ValidateTopology(allLive(ts)))
	_ = super
}

func TestInsertPointIsIdempotentForCoincidentPoints(t *testing.T) {
	ts, _ := newSeededTriangleSet(t)
	i1, err := ts.InsertPoint(pt(0.1, 0.1))
	require.NoError(t, err)
	before := len(ts.Tris)

	i2, err := ts.InsertPoint(pt(0.1, 0.1))
	require.NoError(t, err)

	assert.Equal(t, i1, i2)
	assert.Len(t, ts.Tris, before, "inserting a coincident point must not mutate the mesh")
}

func TestFulfillDelaunayConstraintMaintainsEmptyCircumcircle(t *testing.T) {
	ts, _ := newSeededTriangleSet(t)
	for _, p := range []struct{ x, y float64 }{
		{0.1, 0.1}, {0.9, 0.1}, {0.5, 0.9}, {0.5, 0.45},
	} {
		_, err := ts.InsertPoint(pt(p.x, p.y))
		require.NoError(t, err)
	}

	live := allLive(ts)
	for id := range live {
		tri := ts.Tris[id]
		for k := 0; k < 3; k++ {
			o := tri.Adj[k]
			if o == cdt.NilTri {
				continue
			}
			a, b, c := ts.Points[tri.V[0]], ts.Points[tri.V[1]], ts.Points[tri.V[2]]
			opp := ts.Tris[o]
			var oppApex int = -1
			for _, v := range opp.V {
				if v != tri.V[k] && v != tri.V[(k+1)%3] {
					oppApex = v
				}
			}
			require.NotEqual(t, -1, oppApex)
			assert.False(t, predicates.InCircumcircle(a, b, c, ts.Points[oppApex]),
				"triangle %d circumcircle strictly contains opposing vertex", id)
		}
	}
}
