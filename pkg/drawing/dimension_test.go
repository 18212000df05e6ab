package drawing

import (
	"math"
	"testing"
)

func almostEqual(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestBuildDimensionHorizontal(t *testing.T) {
	p1 := Point{X: -50, Y: 10}
	p2 := Point{X: 50, Y: 10}
	d := BuildDimension(p1, p2, 20, "0'-10.00\"", 0)

	// Direction (1,0) rotates to normal (0,1): positive offset moves
	// the dimension line to larger Y.
	wantO1 := Point{X: -50, Y: 30}
	wantO2 := Point{X: 50, Y: 30}
	if !almostEqual(d.Span.A, wantO1) || !almostEqual(d.Span.B, wantO2) {
		t.Errorf("span = %+v -> %+v, want %+v -> %+v", d.Span.A, d.Span.B, wantO1, wantO2)
	}
	if !almostEqual(d.Ext1.A, p1) || !almostEqual(d.Ext1.B, wantO1) {
		t.Errorf("ext1 = %+v -> %+v", d.Ext1.A, d.Ext1.B)
	}
	if !almostEqual(d.Ext2.A, p2) || !almostEqual(d.Ext2.B, wantO2) {
		t.Errorf("ext2 = %+v -> %+v", d.Ext2.A, d.Ext2.B)
	}
	if d.Label != "0'-10.00\"" {
		t.Errorf("label = %q", d.Label)
	}
	// Label sits at the midpoint plus the perpendicular gap.
	if !almostEqual(d.LabelPos, Point{X: 0, Y: 30 + labelGap}) {
		t.Errorf("label pos = %+v", d.LabelPos)
	}
}

func TestBuildDimensionOffsetSign(t *testing.T) {
	p1 := Point{X: 0, Y: 0}
	p2 := Point{X: 10, Y: 0}
	up := BuildDimension(p1, p2, -5, "", 0)
	down := BuildDimension(p1, p2, 5, "", 0)
	if up.Span.A.Y != -5 || down.Span.A.Y != 5 {
		t.Errorf("offset sign does not pick the side: up %v, down %v",
			up.Span.A.Y, down.Span.A.Y)
	}
}

func TestBuildDimensionVertical(t *testing.T) {
	d := BuildDimension(Point{X: -40, Y: -10}, Point{X: -40, Y: 10}, 28, "2.50\"", -90)
	// Direction (0,1) rotates to normal (-1,0): positive offset moves
	// the line to smaller X (left of the measured edge).
	if !almostEqual(d.Span.A, Point{X: -68, Y: -10}) {
		t.Errorf("span start = %+v", d.Span.A)
	}
	if d.LabelRotation != -90 {
		t.Errorf("rotation = %v", d.LabelRotation)
	}
}

func TestBuildDimensionDegenerate(t *testing.T) {
	p := Point{X: 3, Y: 4}
	d := BuildDimension(p, p, 10, "x", 0)
	for _, pt := range []Point{d.Span.A, d.Span.B, d.LabelPos, d.Ext1.B, d.Ext2.B} {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
			t.Fatalf("degenerate dimension produced non-finite point %+v", pt)
		}
	}
	// Substituted X direction gives normal (0,1): annotation collapses
	// to a point displaced by the offset.
	if !almostEqual(d.Span.A, Point{X: 3, Y: 14}) {
		t.Errorf("degenerate span start = %+v", d.Span.A)
	}
}

func TestArrowHeads(t *testing.T) {
	d := BuildDimension(Point{X: 0, Y: 0}, Point{X: 100, Y: 0}, 0, "", 0)
	heads := d.ArrowHeads(9)
	if !almostEqual(heads[0][0], Point{X: 0, Y: 0}) {
		t.Errorf("arrow 1 tip = %+v", heads[0][0])
	}
	if !almostEqual(heads[1][0], Point{X: 100, Y: 0}) {
		t.Errorf("arrow 2 tip = %+v", heads[1][0])
	}
	// Tails point inward along the dimension line.
	if heads[0][1].X != 9 || heads[1][1].X != 91 {
		t.Errorf("arrow tails = %v, %v", heads[0][1].X, heads[1][1].X)
	}
}
