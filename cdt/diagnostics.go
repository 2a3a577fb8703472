package cdt

import (
	"github.com/pkg/errors"

	"github.com/planarcdt/cdt/predicates"
)

// Diagnostics summarizes a built triangulation for logging and for tests
// asserting the engine's invariants (§8).
type Diagnostics struct {
	VertexCount     int
	TriangleCount   int
	ConstraintCount int
	IsDelaunay      bool
}

// GetDiagnostics computes summary statistics plus an unconstrained-Delaunay
// check over every live (non-excluded) triangle.
func (ts *TriangleSet) GetDiagnostics(live map[TriID]bool, constraints map[[2]int]bool) Diagnostics {
	d := Diagnostics{
		VertexCount:     len(ts.Points),
		TriangleCount:   len(live),
		ConstraintCount: len(constraints),
		IsDelaunay:      true,
	}

	for id := range live {
		t := ts.Tris[id]
		for k := 0; k < 3; k++ {
			o := t.Adj[k]
			if o == NilTri || !live[o] {
				continue
			}
			v0, v1 := t.V[k], t.V[(k+1)%3]
			if constraints[canon(v0, v1)] {
				continue
			}
			m := ts.localAdjIndex(o, id)
			opp := ts.Tris[o].V[(m+2)%3]
			a, b, c := ts.Points[t.V[0]], ts.Points[t.V[1]], ts.Points[t.V[2]]
			if predicates.InCircumcircle(a, b, c, ts.Points[opp]) {
				d.IsDelaunay = false
			}
		}
	}
	return d
}

// ValidateTopology re-checks the structural invariants (§3) that must hold
// after every mutation: CCW winding, symmetric adjacency, and unique
// vertices per triangle. It is run once at the end of construction as a
// self-check before the driver denormalizes and emits.
func (ts *TriangleSet) ValidateTopology(live map[TriID]bool) error {
	for id := range live {
		t := ts.Tris[id]

		if t.V[0] == t.V[1] || t.V[1] == t.V[2] || t.V[2] == t.V[0] {
			return errors.Errorf("triangle %d has repeated vertices %v", id, t.V)
		}

		a, b, c := ts.Points[t.V[0]], ts.Points[t.V[1]], ts.Points[t.V[2]]
		if predicates.CCW(a, b, c) <= 0 {
			return errors.Errorf("triangle %d is not CCW: vertices %v", id, t.V)
		}

		for k := 0; k < 3; k++ {
			o := t.Adj[k]
			if o == NilTri || !live[o] {
				continue
			}
			m := ts.localAdjIndex(o, id)
			if m == -1 {
				return errors.Errorf("triangle %d adj[%d]=%d does not point back", id, k, o)
			}
			v0, v1 := t.V[k], t.V[(k+1)%3]
			ov0, ov1 := ts.Tris[o].V[m], ts.Tris[o].V[(m+1)%3]
			if v0 != ov1 || v1 != ov0 {
				return errors.Errorf("triangle %d edge (%d,%d) does not match reversed neighbor edge (%d,%d)", id, v0, v1, ov0, ov1)
			}
		}
	}
	return nil
}
