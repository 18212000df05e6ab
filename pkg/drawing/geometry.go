// Package drawing turns a plate parameter set and view configuration
// into a renderable scene: pixel-space outlines, section hatching, axis
// guides, and dimension annotations. Everything here is a pure
// transform; rendering and serialization live elsewhere.
package drawing

import "math"

// Point is a 2D point or vector in drawing coordinates.
type Point struct {
	X float64
	Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the vector length of p.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Line is a straight segment from A to B.
type Line struct {
	A Point
	B Point
}

// Rect is an axis-aligned rectangle anchored at its min corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// BoundingBox accumulates the extent of scene geometry.
type BoundingBox struct {
	Min Point
	Max Point
}

// NewBoundingBox returns an empty box ready for expansion.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Expand grows the box to include p.
func (b *BoundingBox) Expand(p Point) {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
}

// ExpandRect grows the box to include all corners of r.
func (b *BoundingBox) ExpandRect(r Rect) {
	b.Expand(Point{X: r.X, Y: r.Y})
	b.Expand(Point{X: r.X + r.W, Y: r.Y + r.H})
}

// HatchLines fills r with 45-degree section hatching at the given
// spacing, clipped to the rectangle. The line set depends only on the
// rectangle and spacing, so repeated calls are identical.
func HatchLines(r Rect, spacing float64) []Line {
	if spacing <= 0 || r.W <= 0 || r.H <= 0 {
		return nil
	}

	var lines []Line
	// Lines of constant x+y=c sweep the rectangle from its min corner
	// to its max corner.
	start := r.X + r.Y
	end := r.X + r.W + r.Y + r.H
	for c := start + spacing; c < end; c += spacing {
		// Intersect x+y=c with the rectangle edges.
		x1 := math.Max(r.X, c-(r.Y+r.H))
		x2 := math.Min(r.X+r.W, c-r.Y)
		if x1 >= x2 {
			continue
		}
		lines = append(lines, Line{
			A: Point{X: x1, Y: c - x1},
			B: Point{X: x2, Y: c - x2},
		})
	}
	return lines
}
