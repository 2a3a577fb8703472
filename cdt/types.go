// Package cdt implements the constrained Delaunay triangulation engine: an
// indexed, pointerless triangle set with incremental point insertion,
// Delaunay restoration by edge flipping, and constrained-edge insertion by
// quadrilateral swap propagation.
package cdt

import "github.com/planarcdt/cdt/types"

// TriID indexes a triangle within a TriangleSet's triangle array.
type TriID int

// NilTri is the sentinel adjacency value meaning "no neighbor across this
// edge" (a boundary edge of the current triangulation).
const NilTri TriID = -1

// NilVertex is the sentinel point-index value meaning "no such vertex".
const NilVertex int = -1

// DelaunayTriangle is a triangle stored by vertex index, CCW, with adjacency
// stored by triangle index. adj[k] is the neighbor across edge
// (v[k], v[(k+1)%3]), or NilTri if that edge is a triangulation boundary.
type DelaunayTriangle struct {
	V   [3]int
	Adj [3]TriID
}

// EdgeHandle describes an oriented edge inside a specific triangle: the
// triangle it was found in, the local edge slot, and the two endpoint
// vertex indices in the direction the triangle stores them.
type EdgeHandle struct {
	Tri  TriID
	Edge int
	A, B int
}

// TriangleSet is the append-only point/triangle store with adjacency. It
// never deletes a point, and never deletes a triangle — triangles made
// obsolete by a split or flip are mutated in place, not removed.
type TriangleSet struct {
	Points     []types.Point
	pointIndex map[types.Point]int
	Tris       []DelaunayTriangle
	seed       TriID // most recently touched triangle, used as the next locate walk's start
}

// NewTriangleSet creates an empty triangle set with room for n points.
func NewTriangleSet(n int) *TriangleSet {
	return &TriangleSet{
		Points:     make([]types.Point, 0, n),
		pointIndex: make(map[types.Point]int, n),
		Tris:       make([]DelaunayTriangle, 0, 2*n),
		seed:       NilTri,
	}
}

// AddPoint returns the index of p, appending it if no existing point has
// the exact same coordinates (coordinate equality, not epsilon proximity —
// see §4.3 of the design).
func (ts *TriangleSet) AddPoint(p types.Point) int {
	if idx, ok := ts.pointIndex[p]; ok {
		return idx
	}
	idx := len(ts.Points)
	ts.Points = append(ts.Points, p)
	ts.pointIndex[p] = idx
	return idx
}

// IndexOfPoint returns the index of p if it has already been added.
func (ts *TriangleSet) IndexOfPoint(p types.Point) (int, bool) {
	idx, ok := ts.pointIndex[p]
	return idx, ok
}

// AddTriangle appends a new triangle. The caller is responsible for
// supplying vertices in CCW order.
func (ts *TriangleSet) AddTriangle(v0, v1, v2 int, a0, a1, a2 TriID) TriID {
	id := TriID(len(ts.Tris))
	ts.Tris = append(ts.Tris, DelaunayTriangle{
		V:   [3]int{v0, v1, v2},
		Adj: [3]TriID{a0, a1, a2},
	})
	return id
}

// ReplaceTriangle overwrites triangle i in place.
func (ts *TriangleSet) ReplaceTriangle(i TriID, t DelaunayTriangle) {
	ts.Tris[i] = t
}

// ReplaceAdjacent finds the slot in triangle i whose neighbor is
// oldNeighbor and repoints it to newNeighbor. It is a no-op if i is NilTri
// (an edge with no neighbor needs no fixup).
func (ts *TriangleSet) ReplaceAdjacent(i, oldNeighbor, newNeighbor TriID) {
	if i == NilTri {
		return
	}
	t := &ts.Tris[i]
	for k := 0; k < 3; k++ {
		if t.Adj[k] == oldNeighbor {
			t.Adj[k] = newNeighbor
			return
		}
	}
}

// Vertices returns the three points of triangle i.
func (ts *TriangleSet) Vertices(i TriID) (a, b, c types.Point) {
	t := ts.Tris[i]
	return ts.Points[t.V[0]], ts.Points[t.V[1]], ts.Points[t.V[2]]
}

// localAdjIndex returns the slot k in triangle `in` whose neighbor is
// `neighbor`, or -1 if none matches.
func (ts *TriangleSet) localAdjIndex(in, neighbor TriID) int {
	t := ts.Tris[in]
	for k := 0; k < 3; k++ {
		if t.Adj[k] == neighbor {
			return k
		}
	}
	return -1
}

// localVertexIndex returns the slot k in triangle `in` whose vertex is v,
// or -1 if v is not a vertex of that triangle.
func (ts *TriangleSet) localVertexIndex(in TriID, v int) int {
	t := ts.Tris[in]
	for k := 0; k < 3; k++ {
		if t.V[k] == v {
			return k
		}
	}
	return -1
}
