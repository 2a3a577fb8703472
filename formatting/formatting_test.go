package formatting

import (
	"bytes"
	"testing"

	"github.com/planarcdt/cdt/cdt"
	"github.com/planarcdt/cdt/types"
)

func TestFormattingHelpers(t *testing.T) {
	pt := types.Point{X: 1.2345, Y: -9.876}
	if s := PointString(pt); s == "" {
		t.Fatalf("point string should not be empty")
	}

	box := types.AABB{Min: types.Point{X: 0, Y: 0}, Max: types.Point{X: 1, Y: 1}}
	if s := AABBString(box); s == "" {
		t.Fatalf("aabb string should not be empty")
	}

	if TriIDString(cdt.NilTri) != "TriID(nil)" {
		t.Fatalf("expected nil sentinel rendering")
	}
	if TriIDString(cdt.TriID(3)) == "" {
		t.Fatalf("tri id string should not be empty")
	}

	edge := cdt.EdgeHandle{Tri: cdt.TriID(0), Edge: 1, A: 2, B: 1}
	if EdgeString(edge) != "Edge{2, 1}" {
		t.Fatalf("unexpected edge string: %s", EdgeString(edge))
	}

	tri := cdt.DelaunayTriangle{V: [3]int{1, 2, 3}, Adj: [3]cdt.TriID{cdt.NilTri, cdt.NilTri, cdt.NilTri}}
	if s := TriangleString(tri); s == "" {
		t.Fatalf("triangle string should not be empty")
	}

	out := cdt.Triangle2D{pt, pt, pt}
	if s := Triangle2DString(out); s == "" {
		t.Fatalf("triangle2d string should not be empty")
	}

	buf := &bytes.Buffer{}
	if err := WritePoint(buf, pt); err != nil {
		t.Fatalf("write point failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected output for WritePoint")
	}
}
