package types

import "testing"

func TestPointZeroValue(t *testing.T) {
	var p Point
	if p.X != 0 || p.Y != 0 {
		t.Fatalf("expected zero value point, got %+v", p)
	}
}

func TestPointConstruction(t *testing.T) {
	p := Point{X: 1.5, Y: -2.25}
	if p.X != 1.5 || p.Y != -2.25 {
		t.Fatalf("unexpected point values: %+v", p)
	}
}

func TestPointArithmetic(t *testing.T) {
	a := Point{X: 3, Y: 4}
	b := Point{X: 1, Y: 2}

	if got := a.Add(b); got != (Point{X: 4, Y: 6}) {
		t.Fatalf("Add: got %+v", got)
	}
	if got := a.Sub(b); got != (Point{X: 2, Y: 2}) {
		t.Fatalf("Sub: got %+v", got)
	}
	if got := a.Scale(2); got != (Point{X: 6, Y: 8}) {
		t.Fatalf("Scale: got %+v", got)
	}

	// Sub then Scale then Add round-trips back to the original point, the
	// same shape of arithmetic cdt/pipeline.go uses to normalize and
	// denormalize coordinates.
	normalized := a.Sub(b).Scale(0.5)
	if got := normalized.Scale(2).Add(b); got != a {
		t.Fatalf("round trip: got %+v, want %+v", got, a)
	}
}
