package cdt

import (
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"

	"github.com/planarcdt/cdt/types"
)

// collinearEps is the tolerance passed to QuickHull when checking whether
// the input point cloud spans more than a line.
const collinearEps = 1e-9

// inputIsCollinear reports whether the input point cloud is degenerate —
// entirely collinear, or fewer than 3 distinct points. The 2D points are
// lifted to r3.Vector at z=0 and run through QuickHull's convex hull
// construction; a coplanar (z=0) point set that is also collinear has no
// valid 3D hull, which QuickHull surfaces by either panicking or returning
// an empty index set. Either outcome is treated as "collinear" — this is a
// single robust whole-cloud check in place of re-testing every triple by
// hand, per the point-location walk's documented fatal case (§7).
func inputIsCollinear(points []types.Point) (collinear bool) {
	if len(points) < 3 {
		return true
	}

	verts := make([]r3.Vector, len(points))
	for i, p := range points {
		verts[i] = r3.Vector{X: p.X, Y: p.Y, Z: 0}
	}

	defer func() {
		if r := recover(); r != nil {
			collinear = true
		}
	}()

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(verts, true, true, collinearEps)
	return len(ch.Indices) == 0
}
