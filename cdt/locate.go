package cdt

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/planarcdt/cdt/predicates"
	"github.com/planarcdt/cdt/types"
)

// maxWalkSteps bounds the point-location and edge-crossing walks. A correct
// triangulation never needs more than a handful of triangle-count steps;
// this is a termination backstop against a broken invariant (see
// ErrWalkLeftTriangulation), not a tuning knob.
const maxWalkSteps = 1_000_000

// signedArea2 returns the (non-exact) doubled signed area of a,b,p. It is
// used only to rank which edge of a triangle is "most against" a query
// point during point location; ties are broken by edge index, which is
// deterministic but otherwise arbitrary, matching §4.3.
func signedArea2(a, b, p types.Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// FindTriangleContainingPoint walks from seed toward p, at each step
// crossing the edge whose half-plane most excludes p, until all three
// edges include p.
func (ts *TriangleSet) FindTriangleContainingPoint(p types.Point, seed TriID) (TriID, error) {
	cur := seed
	for step := 0; step < maxWalkSteps; step++ {
		t := ts.Tris[cur]
		verts := [3]types.Point{ts.Points[t.V[0]], ts.Points[t.V[1]], ts.Points[t.V[2]]}

		worstEdge := -1
		worstVal := 0.0
		for k := 0; k < 3; k++ {
			val := signedArea2(verts[k], verts[(k+1)%3], p)
			if val < worstVal {
				worstVal = val
				worstEdge = k
			}
		}
		if worstEdge == -1 {
			return cur, nil
		}
		next := t.Adj[worstEdge]
		if next == NilTri {
			return NilTri, errors.Wrapf(ErrWalkLeftTriangulation, "at triangle %d seeking point %+v", cur, p)
		}
		cur = next
	}
	return NilTri, errors.Wrapf(ErrWalkLeftTriangulation, "exceeded %d steps seeking point %+v", maxWalkSteps, p)
}

// FindTriangleContainingEdge returns the triangle with a directed edge
// (a,b) in that order, if one exists.
func (ts *TriangleSet) FindTriangleContainingEdge(a, b int) (EdgeHandle, bool) {
	for id, t := range ts.Tris {
		for k := 0; k < 3; k++ {
			if t.V[k] == a && t.V[(k+1)%3] == b {
				return EdgeHandle{Tri: TriID(id), Edge: k, A: a, B: b}, true
			}
		}
	}
	return EdgeHandle{}, false
}

// GetTrianglesWithVertex enumerates every triangle referencing vertex v.
func (ts *TriangleSet) GetTrianglesWithVertex(v int) []TriID {
	var out []TriID
	for id, t := range ts.Tris {
		if t.V[0] == v || t.V[1] == v || t.V[2] == v {
			out = append(out, TriID(id))
		}
	}
	return out
}

// FindTriangleContainingLineEndpoint returns the triangle incident to
// vertex a whose interior angle at a contains the ray toward b.
func (ts *TriangleSet) FindTriangleContainingLineEndpoint(a, b int) (TriID, error) {
	aPt := ts.Points[a]
	bPt := ts.Points[b]
	for _, id := range ts.GetTrianglesWithVertex(a) {
		t := ts.Tris[id]
		i := ts.localVertexIndex(id, a)
		next := t.V[(i+1)%3]
		prev := t.V[(i+2)%3]
		nextPt, prevPt := ts.Points[next], ts.Points[prev]

		if predicates.CCW(aPt, nextPt, bPt) >= 0 && predicates.CCW(aPt, bPt, prevPt) >= 0 {
			return id, nil
		}
	}
	return NilTri, errors.Wrapf(ErrNoContainingAngle, "vertex %d toward %d", a, b)
}

// GetIntersectingEdges walks topologically from start toward pB, appending
// every edge strictly crossed by segment aIdx->bIdx. Edges sharing an
// endpoint with the query segment are skipped rather than reported, per the
// endpoint-filtering rule.
func (ts *TriangleSet) GetIntersectingEdges(aIdx, bIdx int, start TriID) ([]EdgeHandle, error) {
	A, B := ts.Points[aIdx], ts.Points[bIdx]
	var edges []EdgeHandle
	cur := start
	prev := NilTri

	for step := 0; step < maxWalkSteps; step++ {
		t := ts.Tris[cur]
		if t.V[0] == bIdx || t.V[1] == bIdx || t.V[2] == bIdx {
			return edges, nil
		}

		advanced := false
		for k := 0; k < 3; k++ {
			v0, v1 := t.V[k], t.V[(k+1)%3]
			if v0 == aIdx || v0 == bIdx || v1 == aIdx || v1 == bIdx {
				continue
			}
			if prev != NilTri && t.Adj[k] == prev {
				continue // the edge just crossed to reach this triangle
			}
			p0, p1 := ts.Points[v0], ts.Points[v1]
			if _, ok := predicates.SegmentIntersect(A, B, p0, p1); ok {
				edges = append(edges, EdgeHandle{Tri: cur, Edge: k, A: v0, B: v1})
				next := t.Adj[k]
				if next == NilTri {
					return nil, errors.Wrapf(ErrWalkLeftTriangulation, "crossing edge (%d,%d) toward point %d", v0, v1, bIdx)
				}
				prev = cur
				cur = next
				advanced = true
				break
			}
		}
		if advanced {
			continue
		}
		if predicates.PointInTriangle(B, ts.Points[t.V[0]], ts.Points[t.V[1]], ts.Points[t.V[2]]) {
			return edges, nil
		}
		return nil, errors.Wrapf(ErrWalkLeftTriangulation, "no crossing edge found walking toward point %d", bIdx)
	}
	return nil, errors.Wrapf(ErrWalkLeftTriangulation, "exceeded %d steps walking toward point %d", maxWalkSteps, bIdx)
}

// GetTrianglesInPolygon flood-fills the interior of a CCW vertex loop,
// seeding from the triangle that owns one of the loop's directed edges
// (the side-left-of-travel triangle for a CCW loop is the interior one).
// Flood-fill propagation stops at any edge belonging to the loop.
func (ts *TriangleSet) GetTrianglesInPolygon(loop []int) ([]TriID, error) {
	n := len(loop)
	if n < 3 {
		return nil, errors.Wrap(ErrPolygonTooShort, "GetTrianglesInPolygon")
	}

	boundary := make(map[[2]int]bool, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		boundary[canon(loop[i], loop[j])] = true
	}

	var seed TriID = NilTri
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if h, ok := ts.FindTriangleContainingEdge(loop[i], loop[j]); ok {
			seed = h.Tri
			break
		}
	}
	if seed == NilTri {
		return nil, errors.New("GetTrianglesInPolygon: no triangle found containing any loop edge")
	}

	visited := map[TriID]bool{seed: true}
	queue := []TriID{seed}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		t := ts.Tris[cur]
		for k := 0; k < 3; k++ {
			v0, v1 := t.V[k], t.V[(k+1)%3]
			if boundary[canon(v0, v1)] {
				continue
			}
			nb := t.Adj[k]
			if nb == NilTri || visited[nb] {
				continue
			}
			visited[nb] = true
			queue = append(queue, nb)
		}
	}

	out := make([]TriID, 0, len(visited))
	for id := range visited {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func canon(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}
