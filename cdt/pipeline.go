package cdt

import (
	"math"

	"github.com/pkg/errors"

	"github.com/planarcdt/cdt/predicates"
	"github.com/planarcdt/cdt/spatial"
	"github.com/planarcdt/cdt/types"
	"github.com/planarcdt/cdt/validation"
)

// Triangle2D is a single output triangle: three 2D vertices in CCW order,
// in the caller's original coordinate space.
type Triangle2D [3]types.Point

// superVertices are the fixed, oversized CCW triangle vertices that
// enclose the normalized unit square, per §4.6 step 3.
var superVertices = [3]types.Point{
	{X: -100, Y: -100},
	{X: 100, Y: -100},
	{X: 0, Y: 100},
}

// Triangulate computes the constrained Delaunay triangulation of points,
// subtracting the interior of each hole polygon. Holes must be simple,
// CCW-wound, non-overlapping polygons whose vertices lie within the
// bounding box of points.
func Triangulate(points []types.Point, holes [][]types.Point, opts ...Option) ([]Triangle2D, error) {
	cfg := defaultOptions()
	for _, o := range opts {
		o(&cfg)
	}
	log := cfg.Logger

	if len(points) < 3 {
		return nil, errors.Wrapf(ErrTooFewPoints, "got %d", len(points))
	}
	if inputIsCollinear(points) {
		return nil, ErrCollinearInput
	}

	if cfg.MergeVertices {
		points = mergeNearbyPoints(points, cfg.MergeDistance)
		if len(points) < 3 {
			return nil, errors.Wrapf(ErrTooFewPoints, "got %d after merging nearby vertices", len(points))
		}
	}

	bounds := types.BoundingBox(points)
	for i, hole := range holes {
		if err := validation.ValidatePolygon(hole,
			validation.WithRequireCCW(true),
			validation.WithBounds(bounds),
		); err != nil {
			return nil, errors.Wrapf(err, "hole polygon %d", i)
		}
	}

	maxDim := math.Max(bounds.Width(), bounds.Height())
	if maxDim == 0 {
		maxDim = 1
	}
	normalize := func(p types.Point) types.Point {
		return p.Sub(bounds.Min).Scale(1 / maxDim)
	}
	denormalize := func(p types.Point) types.Point {
		return p.Scale(maxDim).Add(bounds.Min)
	}

	normPts := make([]types.Point, len(points))
	for i, p := range points {
		normPts[i] = normalize(p)
	}

	grid := spatial.NewBinGrid(len(normPts), types.BoundingBox(normPts))
	for i, p := range normPts {
		grid.AddPoint(i, p)
	}

	ts := NewTriangleSet(len(normPts) + len(holes)*4 + 3)
	s0 := ts.AddPoint(superVertices[0])
	s1 := ts.AddPoint(superVertices[1])
	s2 := ts.AddPoint(superVertices[2])
	super := ts.AddTriangle(s0, s1, s2, NilTri, NilTri, NilTri)
	ts.seed = super

	for _, i := range grid.Ordered() {
		if _, err := ts.InsertPoint(normPts[i]); err != nil {
			return nil, errors.Wrapf(err, "inserting input point %d", i)
		}
	}

	constraints := make(map[[2]int]bool)
	holeLoops := make([][]int, len(holes))

	for hi, hole := range holes {
		loop := make([]int, len(hole))
		for i, p := range hole {
			idx, err := ts.InsertPoint(normalize(p))
			if err != nil {
				return nil, errors.Wrapf(err, "inserting hole %d vertex %d", hi, i)
			}
			loop[i] = idx
		}
		holeLoops[hi] = loop

		n := len(loop)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			a, b := loop[i], loop[j]
			if a == b {
				log.Warn().Int("hole", hi).Int("vertex", i).Msg("skipping zero-length hole edge")
				continue
			}
			if err := ts.InsertConstrainedEdge(a, b); err != nil {
				return nil, errors.Wrapf(err, "hole %d edge (%d,%d)", hi, i, j)
			}
			constraints[canon(a, b)] = true
		}
	}

	toRemove := make(map[TriID]bool)
	for _, loop := range holeLoops {
		inside, err := ts.GetTrianglesInPolygon(loop)
		if err != nil {
			return nil, errors.Wrap(err, "flood-filling hole interior")
		}
		for _, id := range inside {
			toRemove[id] = true
		}
	}

	// Supertriangle removal (§4.6 step 7 / Open Question resolution): any
	// triangle referencing a supertriangle vertex is outside the point
	// cloud's hull by construction. A secondary flood fill across
	// non-constrained edges starting from these triangles would reach
	// exactly this same set and no further, since crossing from a
	// supertriangle-touching triangle into the interior always crosses a
	// hull edge first — and the neighbor across a hull edge never itself
	// references a supertriangle vertex. The membership test below is that
	// flood fill's fixed point, computed directly.
	for id, t := range ts.Tris {
		if t.V[0] == s0 || t.V[1] == s0 || t.V[2] == s0 ||
			t.V[0] == s1 || t.V[1] == s1 || t.V[2] == s1 ||
			t.V[0] == s2 || t.V[1] == s2 || t.V[2] == s2 {
			toRemove[TriID(id)] = true
		}
	}

	live := make(map[TriID]bool, len(ts.Tris)-len(toRemove))
	for id := range ts.Tris {
		tid := TriID(id)
		if !toRemove[tid] {
			live[tid] = true
		}
	}

	if err := ts.ValidateTopology(live); err != nil {
		return nil, errors.Wrap(err, "post-build topology validation")
	}

	diag := ts.GetDiagnostics(live, constraints)
	if !diag.IsDelaunay {
		return nil, errors.New("unconstrained edges violate the Delaunay empty-circumcircle property")
	}
	log.Debug().
		Int("vertices", diag.VertexCount).
		Int("triangles", diag.TriangleCount).
		Int("constraints", diag.ConstraintCount).
		Msg("triangulation built")

	out := make([]Triangle2D, 0, len(live))
	for id := 0; id < len(ts.Tris); id++ {
		tid := TriID(id)
		if !live[tid] {
			continue
		}
		t := ts.Tris[tid]
		a := denormalize(ts.Points[t.V[0]])
		b := denormalize(ts.Points[t.V[1]])
		c := denormalize(ts.Points[t.V[2]])
		if predicates.CCW(a, b, c) <= 0 {
			return nil, errors.Errorf("triangle %d denormalized to non-CCW order", id)
		}
		out = append(out, Triangle2D{a, b, c})
	}
	return out, nil
}

// mergeNearbyPoints collapses points within distance of an already-kept
// point onto that point, using a spatial hash grid so each candidate is
// only compared against neighbors in nearby cells rather than the whole
// set. Points are processed in input order, so the first point in any
// cluster is the one that survives.
func mergeNearbyPoints(points []types.Point, distance float64) []types.Point {
	if distance <= 0 {
		distance = 1e-9
	}
	grid := spatial.NewHashGrid(distance)
	kept := make([]types.Point, 0, len(points))
	for _, p := range points {
		merged := false
		for _, idx := range grid.FindNear(p, distance) {
			if predicates.Dist2(p, kept[idx]) <= distance*distance {
				merged = true
				break
			}
		}
		if !merged {
			grid.Add(len(kept), p)
			kept = append(kept, p)
		}
	}
	return kept
}
