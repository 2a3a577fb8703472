package types

// AABB represents an axis-aligned bounding box in 2D space.
//
// The bounds are inclusive on all sides. An AABB is valid when
// Min.X <= Max.X and Min.Y <= Max.Y.
type AABB struct {
	Min Point // Minimum (bottom-left) corner, inclusive
	Max Point // Maximum (top-right) corner, inclusive
}

// Width returns Max.X - Min.X.
func (b AABB) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns Max.Y - Min.Y.
func (b AABB) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Contains reports whether p lies within the box, inclusive of the boundary.
func (b AABB) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Expand returns a copy of the box grown by tol on every side.
func (b AABB) Expand(tol float64) AABB {
	return AABB{
		Min: Point{X: b.Min.X - tol, Y: b.Min.Y - tol},
		Max: Point{X: b.Max.X + tol, Y: b.Max.Y + tol},
	}
}

// BoundingBox computes the axis-aligned bounding box of a point set.
// Callers must pass at least one point.
func BoundingBox(points []Point) AABB {
	b := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
	}
	return b
}
