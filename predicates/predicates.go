// Package predicates implements the geometric tests the triangulation engine
// depends on for correctness: orientation, in-circumcircle, convexity,
// containment, and segment intersection.
//
// Each predicate first evaluates in float64 with a magnitude-scaled filter
// and falls back to arbitrary-precision arithmetic (math/big) only when the
// float64 result is too close to zero to trust, matching the robust-predicate
// convention used throughout the corpus this engine is built from. Per the
// engine's non-goals, there is no adaptive multi-stage filter beyond this
// single float64-then-exact fallback.
package predicates

import (
	"math"
	"math/big"

	"github.com/planarcdt/cdt/types"
)

const (
	orientFilter   = 1e-15
	inCircleFilter = 1e-15
)

// CCW returns the sign of (b-a) x (c-a):
//
//	+1 if a, b, c make a counter-clockwise turn
//	-1 if a, b, c make a clockwise turn
//	 0 if a, b, c are collinear
func CCW(a, b, c types.Point) int {
	ax := b.X - a.X
	ay := b.Y - a.Y
	bx := c.X - a.X
	by := c.Y - a.Y
	det := ax*by - ay*bx

	maxMag := maxAbs(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	eps := maxMag * maxMag * orientFilter
	if eps < orientFilter {
		eps = orientFilter
	}

	switch {
	case det > eps:
		return 1
	case det < -eps:
		return -1
	default:
		return ccwExact(a, b, c)
	}
}

func ccwExact(a, b, c types.Point) int {
	ax := bigFloat(b.X)
	ax.Sub(ax, bigFloat(a.X))
	ay := bigFloat(b.Y)
	ay.Sub(ay, bigFloat(a.Y))
	bx := bigFloat(c.X)
	bx.Sub(bx, bigFloat(a.X))
	by := bigFloat(c.Y)
	by.Sub(by, bigFloat(a.Y))

	det := det2(ax, ay, bx, by)
	return det.Sign()
}

// InCircumcircle reports whether d lies strictly inside the circumcircle of
// a, b, c. Callers must supply a, b, c in CCW order; the result is undefined
// otherwise.
func InCircumcircle(a, b, c, d types.Point) bool {
	adx := a.X - d.X
	ady := a.Y - d.Y
	bdx := b.X - d.X
	bdy := b.Y - d.Y
	cdx := c.X - d.X
	cdy := c.Y - d.Y

	ad2 := adx*adx + ady*ady
	bd2 := bdx*bdx + bdy*bdy
	cd2 := cdx*cdx + cdy*cdy

	det := ad2*(bdx*cdy-bdy*cdx) -
		bd2*(adx*cdy-ady*cdx) +
		cd2*(adx*bdy-ady*bdx)

	maxMag := maxAbs(adx, ady, bdx, bdy, cdx, cdy)
	eps := math.Pow(maxMag, 3) * inCircleFilter
	if eps < inCircleFilter {
		eps = inCircleFilter
	}

	switch {
	case det > eps:
		return true
	case det < -eps:
		return false
	default:
		return inCircleExact(a, b, c, d) > 0
	}
}

func inCircleExact(a, b, c, d types.Point) int {
	ax := bigFloat(a.X - d.X)
	ay := bigFloat(a.Y - d.Y)
	bx := bigFloat(b.X - d.X)
	by := bigFloat(b.Y - d.Y)
	cx := bigFloat(c.X - d.X)
	cy := bigFloat(c.Y - d.Y)

	ad2 := bigFloat(0)
	ad2.Mul(ax, ax)
	tmp := bigFloat(0)
	tmp.Mul(ay, ay)
	ad2.Add(ad2, tmp)

	bd2 := bigFloat(0)
	bd2.Mul(bx, bx)
	tmp.Mul(by, by)
	bd2.Add(bd2, tmp)

	cd2 := bigFloat(0)
	cd2.Mul(cx, cx)
	tmp.Mul(cy, cy)
	cd2.Add(cd2, tmp)

	term1 := bigFloat(0)
	term1.Mul(ad2, det2(bx, by, cx, cy))
	term2 := bigFloat(0)
	term2.Mul(bd2, det2(ax, ay, cx, cy))
	term3 := bigFloat(0)
	term3.Mul(cd2, det2(ax, ay, bx, by))

	det := bigFloat(0)
	det.Add(term1, term3)
	det.Sub(det, term2)
	return det.Sign()
}

// IsQuadrilateralConvex reports whether the quadrilateral p0-p1-p2-p3 (in
// that cyclic order) is convex, i.e. every interior angle turns the same way.
// Used to gate edge flips: a flip across a non-convex quadrilateral would
// produce overlapping triangles.
func IsQuadrilateralConvex(p0, p1, p2, p3 types.Point) bool {
	s0 := CCW(p0, p1, p2)
	s1 := CCW(p1, p2, p3)
	s2 := CCW(p2, p3, p0)
	s3 := CCW(p3, p0, p1)

	if s0 == 0 || s1 == 0 || s2 == 0 || s3 == 0 {
		return false
	}
	return (s0 > 0) == (s1 > 0) && (s1 > 0) == (s2 > 0) && (s2 > 0) == (s3 > 0)
}

// PointInTriangle reports whether p lies inside or on the boundary of
// triangle a, b, c. The triangle's winding does not need to be known in
// advance; the three orientation signs are required to agree (allowing
// zero, which is "on the edge").
func PointInTriangle(p, a, b, c types.Point) bool {
	d1 := CCW(a, b, p)
	d2 := CCW(b, c, p)
	d3 := CCW(c, a, p)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// SegmentIntersect reports whether the open segments (p1,p2) and (p3,p4)
// cross in their interiors, and if so returns the intersection point.
//
// Any segment sharing an endpoint with the query segment is treated as
// non-intersecting: this avoids spurious "intersections" when walking along
// an edge that already touches a shared vertex (see the constrained-edge
// engine's intersecting-edge collection).
func SegmentIntersect(p1, p2, p3, p4 types.Point) (hit types.Point, ok bool) {
	if p1.Equal(p3) || p1.Equal(p4) || p2.Equal(p3) || p2.Equal(p4) {
		return types.Point{}, false
	}

	o1 := CCW(p1, p2, p3)
	o2 := CCW(p1, p2, p4)
	o3 := CCW(p3, p4, p1)
	o4 := CCW(p3, p4, p2)

	if !(o1*o2 < 0 && o3*o4 < 0) {
		return types.Point{}, false
	}

	t, den := intersectionParam(p1, p2, p3, p4)
	if den == 0 {
		return types.Point{}, false
	}
	return types.Point{X: p1.X + t*(p2.X-p1.X), Y: p1.Y + t*(p2.Y-p1.Y)}, true
}

func intersectionParam(p, q, r, s types.Point) (t, den float64) {
	pqx, pqy := q.X-p.X, q.Y-p.Y
	rsx, rsy := s.X-r.X, s.Y-r.Y
	diffx, diffy := r.X-p.X, r.Y-p.Y

	den = pqx*rsy - pqy*rsx

	maxMag := maxAbs(pqx, pqy, rsx, rsy, diffx, diffy)
	tol := maxMag * maxMag * orientFilter
	if tol < orientFilter {
		tol = orientFilter
	}
	if math.Abs(den) <= tol {
		return intersectionParamExact(p, q, r, s)
	}

	num := diffx*rsy - diffy*rsx
	return num / den, den
}

func intersectionParamExact(p, q, r, s types.Point) (t, den float64) {
	pqx := bigFloat(q.X - p.X)
	pqy := bigFloat(q.Y - p.Y)
	rsx := bigFloat(s.X - r.X)
	rsy := bigFloat(s.Y - r.Y)
	diffx := bigFloat(r.X - p.X)
	diffy := bigFloat(r.Y - p.Y)

	denBig := det2(pqx, pqy, rsx, rsy)
	if denBig.Sign() == 0 {
		return 0, 0
	}
	numBig := det2(diffx, diffy, rsx, rsy)
	tBig := bigFloat(0).Quo(numBig, denBig)
	tFloat, _ := tBig.Float64()
	denFloat, _ := denBig.Float64()
	return tFloat, denFloat
}

// Dist2 returns the squared Euclidean distance between p and q.
func Dist2(p, q types.Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// PointOnSegment reports whether p lies on the closed segment [a,b], within
// tol of the segment's supporting line and bounding box.
func PointOnSegment(p, a, b types.Point, tol float64) bool {
	if CCW(a, b, p) != 0 {
		// Allow the float64 filter's tolerance band: recheck with an
		// absolute cross-product magnitude test rather than the exact CCW.
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		length := math.Sqrt(Dist2(a, b))
		if length == 0 || math.Abs(cross)/length > tol {
			return false
		}
	}
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return p.X >= minX-tol && p.X <= maxX+tol && p.Y >= minY-tol && p.Y <= maxY+tol
}

// PolygonArea returns the signed area of a polygon loop (positive for CCW,
// negative for CW) via the shoelace formula.
func PolygonArea(poly []types.Point) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return sum / 2
}

// PolygonBounds returns the axis-aligned bounding box of a polygon's
// vertices.
func PolygonBounds(poly []types.Point) types.AABB {
	return types.BoundingBox(poly)
}

// PolygonSelfIntersects reports whether any two non-adjacent edges of the
// polygon loop cross.
func PolygonSelfIntersects(poly []types.Point) bool {
	n := len(poly)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := poly[i], poly[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip edges adjacent to edge i (sharing a vertex).
			if j == (i+1)%n || (j+1)%n == i {
				continue
			}
			b1, b2 := poly[j], poly[(j+1)%n]
			if _, ok := SegmentIntersect(a1, a2, b1, b2); ok {
				return true
			}
		}
	}
	return false
}

// PointInPolygonRayCast reports whether p lies inside (or on the boundary
// of) the polygon loop, using a horizontal ray-casting parity test.
func PointInPolygonRayCast(p types.Point, poly []types.Point, tol float64) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[j], poly[i]
		if PointOnSegment(p, a, b, tol) {
			return true
		}
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

func maxAbs(values ...float64) float64 {
	m := 0.0
	for _, v := range values {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

func bigFloat(v float64) *big.Float {
	return new(big.Float).SetPrec(256).SetFloat64(v)
}

func det2(ax, ay, bx, by *big.Float) *big.Float {
	out := bigFloat(0)
	tmp := bigFloat(0)
	out.Mul(ax, by)
	tmp.Mul(ay, bx)
	out.Sub(out, tmp)
	return out
}
