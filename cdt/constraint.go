package cdt

import (
	"github.com/pkg/errors"

	"github.com/planarcdt/cdt/predicates"
	"github.com/planarcdt/cdt/types"
)

// maxConstraintSteps bounds the edge-flip-propagation loop in
// InsertConstrainedEdge. Termination is guaranteed for simple,
// non-self-intersecting polygons (§9); this is a backstop against
// malformed input slipping past validation.
const maxConstraintSteps = 100_000

// InsertConstrainedEdge forces the oriented edge (aIdx, bIdx) into the
// triangulation by repeatedly flipping the diagonals it crosses, then
// re-legalizes the newly created edges (excluding the constrained edge
// itself, which is never flipped again).
func (ts *TriangleSet) InsertConstrainedEdge(aIdx, bIdx int) error {
	if _, ok := ts.FindTriangleContainingEdge(aIdx, bIdx); ok {
		return nil
	}
	if _, ok := ts.FindTriangleContainingEdge(bIdx, aIdx); ok {
		return nil
	}

	start, err := ts.FindTriangleContainingLineEndpoint(aIdx, bIdx)
	if err != nil {
		return errors.Wrapf(err, "locating start triangle for constrained edge (%d,%d)", aIdx, bIdx)
	}

	crossed, err := ts.GetIntersectingEdges(aIdx, bIdx, start)
	if err != nil {
		return errors.Wrapf(err, "collecting edges crossed by constrained edge (%d,%d)", aIdx, bIdx)
	}

	queue := make([][2]int, 0, len(crossed))
	for _, e := range crossed {
		queue = append(queue, [2]int{e.A, e.B})
	}

	var newEdges [][2]int
	A, B := ts.Points[aIdx], ts.Points[bIdx]

	steps := 0
	for len(queue) > 0 {
		steps++
		if steps > maxConstraintSteps {
			return errors.Wrapf(ErrConstraintDidNotConverge, "edge (%d,%d)", aIdx, bIdx)
		}

		edge := queue[0]
		queue = queue[1:]
		v0, v1 := edge[0], edge[1]

		t1h, ok := ts.FindTriangleContainingEdge(v0, v1)
		if !ok {
			t1h, ok = ts.FindTriangleContainingEdge(v1, v0)
			if !ok {
				continue // already resolved by an earlier flip
			}
			v0, v1 = v1, v0
		}
		t1 := t1h.Tri
		k := t1h.Edge
		t2 := ts.Tris[t1].Adj[k]
		if t2 == NilTri {
			continue
		}
		m := ts.localAdjIndex(t2, t1)

		opp1 := ts.Tris[t1].V[(k+2)%3]
		opp2 := ts.Tris[t2].V[(m+2)%3]

		p0, p1 := ts.Points[v0], ts.Points[v1]
		pOpp1, pOpp2 := ts.Points[opp1], ts.Points[opp2]

		if !predicates.IsQuadrilateralConvex(p1, pOpp1, p0, pOpp2) {
			queue = append(queue, edge)
			continue
		}

		ts.swapEdges(t1, (k+2)%3, t2, m)

		if stillCrosses(A, B, pOpp1, pOpp2, aIdx, bIdx, opp1, opp2) {
			queue = append(queue, [2]int{opp1, opp2})
		} else {
			newEdges = append(newEdges, [2]int{opp1, opp2})
		}
	}

	for _, e := range newEdges {
		if isConstraintEdge(e, aIdx, bIdx) {
			continue
		}
		ts.legalizeExistingEdge(e[0], e[1])
	}
	return nil
}

// stillCrosses reports whether the new diagonal (opp1,opp2) still crosses
// the constrained segment A-B, excluding the case where the diagonal
// coincides with endpoint A or B (that just means the constraint itself
// has been completed).
func stillCrosses(A, B, pOpp1, pOpp2 types.Point, aIdx, bIdx, opp1, opp2 int) bool {
	if (opp1 == aIdx || opp1 == bIdx) && (opp2 == aIdx || opp2 == bIdx) {
		return false
	}
	_, ok := predicates.SegmentIntersect(A, B, pOpp1, pOpp2)
	return ok
}

func isConstraintEdge(e [2]int, aIdx, bIdx int) bool {
	return (e[0] == aIdx && e[1] == bIdx) || (e[0] == bIdx && e[1] == aIdx)
}

// legalizeExistingEdge checks the Delaunay property for the two triangles
// sharing edge (a,b) and flips if violated. Used to restore Delaunay
// quality for edges newly created during constrained-edge insertion.
func (ts *TriangleSet) legalizeExistingEdge(a, b int) {
	h, ok := ts.FindTriangleContainingEdge(a, b)
	if !ok {
		h, ok = ts.FindTriangleContainingEdge(b, a)
		if !ok {
			return
		}
	}
	t1 := h.Tri
	k := h.Edge
	t2 := ts.Tris[t1].Adj[k]
	if t2 == NilTri {
		return
	}
	m := ts.localAdjIndex(t2, t1)

	n := (k + 2) % 3
	opp2 := ts.Tris[t2].V[(m+2)%3]
	pA := ts.Points[ts.Tris[t1].V[0]]
	pB := ts.Points[ts.Tris[t1].V[1]]
	pC := ts.Points[ts.Tris[t1].V[2]]
	d := ts.Points[opp2]

	if predicates.InCircumcircle(pA, pB, pC, d) {
		ts.swapEdges(t1, n, t2, m)
	}
}
