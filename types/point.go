package types

// Point represents a position in 2D Cartesian space.
//
// Coordinates use float64 precision, suitable for most geometric
// applications with appropriate epsilon tolerance for comparisons.
//
// Example:
//
//	p := types.Point{X: 1.5, Y: 2.3}
//	q := types.Point{X: 0.0, Y: 0.0}
type Point struct {
	X float64 // Horizontal coordinate
	Y float64 // Vertical coordinate
}

// Equal reports whether two points have identical coordinates (exact
// equality, not epsilon proximity). predicates.SegmentIntersect uses it to
// detect shared endpoints.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Add returns the componentwise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the componentwise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}
