package formatting

import (
	"fmt"
	"io"

	"github.com/planarcdt/cdt/cdt"
)

// TriangleString renders a triangle's vertex indices.
func TriangleString(t cdt.DelaunayTriangle) string {
	return fmt.Sprintf("Triangle{%d, %d, %d}", t.V[0], t.V[1], t.V[2])
}

// WriteTriangle writes a triangle to a writer.
func WriteTriangle(w io.Writer, t cdt.DelaunayTriangle) error {
	_, err := fmt.Fprintf(w, "Triangle{%d, %d, %d}", t.V[0], t.V[1], t.V[2])
	return err
}

// Triangle2DString renders an output triangle's denormalized vertices.
func Triangle2DString(t cdt.Triangle2D) string {
	return fmt.Sprintf("Triangle2D{%s, %s, %s}", PointString(t[0]), PointString(t[1]), PointString(t[2]))
}
