package cdt

import (
	"github.com/planarcdt/cdt/predicates"
	"github.com/planarcdt/cdt/types"
)

// InsertPoint inserts p into the triangulation, splitting its containing
// triangle into three and restoring the Delaunay property by flipping.
// Coincident points are idempotent: inserting the same coordinates twice
// returns the same vertex index without mutating the triangle set.
func (ts *TriangleSet) InsertPoint(p types.Point) (int, error) {
	if idx, ok := ts.IndexOfPoint(p); ok {
		return idx, nil
	}

	containing, err := ts.FindTriangleContainingPoint(p, ts.seed)
	if err != nil {
		return 0, err
	}

	pIdx := ts.AddPoint(p)
	t1ID, t2ID, t3ID := ts.splitTriangle(containing, pIdx)
	ts.seed = t1ID

	var flipStack []TriID
	if ts.Tris[t1ID].Adj[1] != NilTri {
		flipStack = append(flipStack, t1ID)
	}
	if ts.Tris[t2ID].Adj[1] != NilTri {
		flipStack = append(flipStack, t2ID)
	}
	if ts.Tris[t3ID].Adj[1] != NilTri {
		flipStack = append(flipStack, t3ID)
	}

	ts.fulfillDelaunayConstraint(flipStack)
	return pIdx, nil
}

// splitTriangle transforms the triangle at `containing` into the first
// child (P, a, b) in place, appends the other two children, rewires
// adjacency, and returns the three child IDs. The original triangle index
// is reused rather than tombstoned, per the in-place-splitting design.
func (ts *TriangleSet) splitTriangle(containing TriID, p int) (t1, t2, t3 TriID) {
	old := ts.Tris[containing]
	a, b, c := old.V[0], old.V[1], old.V[2]
	outerAB, outerBC, outerCA := old.Adj[0], old.Adj[1], old.Adj[2]

	t1 = containing
	t2 = ts.AddTriangle(p, b, c, NilTri, NilTri, NilTri)
	t3 = ts.AddTriangle(p, c, a, NilTri, NilTri, NilTri)
	ts.ReplaceTriangle(t1, DelaunayTriangle{V: [3]int{p, a, b}})

	ts.Tris[t1].Adj = [3]TriID{t3, outerAB, t2}
	ts.Tris[t2].Adj = [3]TriID{t1, outerBC, t3}
	ts.Tris[t3].Adj = [3]TriID{t2, outerCA, t1}

	ts.ReplaceAdjacent(outerAB, containing, t1)
	ts.ReplaceAdjacent(outerBC, containing, t2)
	ts.ReplaceAdjacent(outerCA, containing, t3)

	return t1, t2, t3
}

// fulfillDelaunayConstraint pops triangles off the flip stack and flips a
// popped triangle with the neighbor across its adjacency slot 1 whenever its
// local vertex 0 lies strictly inside that neighbor's circumcircle. For the
// children pushed by InsertPoint, vertex 0 is the newly inserted point and
// slot 1 is the edge opposite it. After a flip, the neighbor's two other
// former neighbors are pushed and tested the same way, against their own
// local vertex 0 and slot-1 neighbor.
func (ts *TriangleSet) fulfillDelaunayConstraint(stack []TriID) {
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		T := ts.Tris[t]
		o := T.Adj[1]
		if o == NilTri {
			continue
		}
		O := ts.Tris[o]

		a := ts.Points[O.V[0]]
		b := ts.Points[O.V[1]]
		c := ts.Points[O.V[2]]
		d := ts.Points[T.V[0]]

		if !predicates.InCircumcircle(a, b, c, d) {
			continue
		}

		k := ts.localAdjIndex(o, t)
		n1 := O.Adj[(k+1)%3]
		n2 := O.Adj[(k+2)%3]

		ts.swapEdges(t, 0, o, k)

		if n1 != NilTri {
			stack = append(stack, n1)
		}
		if n2 != NilTri {
			stack = append(stack, n2)
		}
	}
}

// swapEdges replaces the diagonal of the quadrilateral formed by mainID and
// oppID with the other diagonal, per §4.4. n is the "not in the shared
// edge" local vertex slot of mainID (the newly inserted or newly exposed
// vertex); m is the slot in oppID where the shared edge starts.
func (ts *TriangleSet) swapEdges(mainID TriID, n int, oppID TriID, m int) {
	o := (m + 2) % 3
	main := ts.Tris[mainID]
	opp := ts.Tris[oppID]

	oldMainAdjN := main.Adj[n]
	oldOppAdjO := opp.Adj[o]

	main.V[(n+1)%3] = opp.V[o]
	opp.V[m] = main.V[n]

	opp.Adj[m] = oldMainAdjN
	main.Adj[n] = oppID
	main.Adj[(n+1)%3] = oldOppAdjO
	opp.Adj[o] = mainID

	ts.ReplaceTriangle(mainID, main)
	ts.ReplaceTriangle(oppID, opp)

	if oldMainAdjN != NilTri {
		ts.ReplaceAdjacent(oldMainAdjN, mainID, oppID)
	}
	if oldOppAdjO != NilTri {
		ts.ReplaceAdjacent(oldOppAdjO, oppID, mainID)
	}
}
