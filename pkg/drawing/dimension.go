package drawing

// labelGap is the perpendicular offset that keeps label text from
// sitting directly on the dimension line, in pixels.
const labelGap = 4.0

// Dimension is a complete dimension annotation: two extension lines
// from the measured points, an offset dimension line with arrows at
// both ends, and a label at the midpoint. Dimensions are ephemeral and
// rebuilt on every scene pass.
type Dimension struct {
	Ext1 Line // p1 -> o1
	Ext2 Line // p2 -> o2
	Span Line // o1 -> o2, arrows at both ends

	// Dir is the unit vector from o1 toward o2, used to orient the
	// arrowheads.
	Dir Point

	Label         string
	LabelPos      Point
	LabelRotation float64 // degrees about LabelPos
}

// BuildDimension constructs the dimension geometry between p1 and p2.
// The dimension line is displaced from the measured points along the
// normal (-dy, dx); the sign of offset therefore picks which side of
// the measured span the dimension appears on. A zero-length span is
// degenerate: unit length is substituted so no coordinate divides by
// zero, and the annotation collapses to a point with a horizontal
// label. The label text is supplied by the caller already formatted.
func BuildDimension(p1, p2 Point, offset float64, label string, rotateDegrees float64) Dimension {
	d := p2.Sub(p1)
	length := d.Length()
	if length == 0 {
		// Degenerate span: substitute unit length along X so the
		// normal is well-defined and nothing downstream sees NaN.
		length = 1
		d = Point{X: 1, Y: 0}
	}
	u := d.Scale(1 / length)

	// 90-degree rotation of the direction. Consistent rotational sense
	// means callers flip sides purely via the sign of offset.
	n := Point{X: -u.Y, Y: u.X}

	o1 := p1.Add(n.Scale(offset))
	o2 := p2.Add(n.Scale(offset))

	mid := o1.Add(o2).Scale(0.5)
	labelPos := mid.Add(n.Scale(labelGap))

	return Dimension{
		Ext1:          Line{A: p1, B: o1},
		Ext2:          Line{A: p2, B: o2},
		Span:          Line{A: o1, B: o2},
		Dir:           u,
		Label:         label,
		LabelPos:      labelPos,
		LabelRotation: rotateDegrees,
	}
}

// ArrowHeads returns the two triangular arrowheads for the dimension
// line, each expressed as three points with the tip first. size is the
// arrow length in pixels.
func (d Dimension) ArrowHeads(size float64) [2][3]Point {
	// Arrow at o1 points back along -Dir, arrow at o2 along +Dir.
	n := Point{X: -d.Dir.Y, Y: d.Dir.X}
	half := n.Scale(size / 3)

	tail1 := d.Span.A.Add(d.Dir.Scale(size))
	tail2 := d.Span.B.Sub(d.Dir.Scale(size))

	return [2][3]Point{
		{d.Span.A, tail1.Add(half), tail1.Sub(half)},
		{d.Span.B, tail2.Add(half), tail2.Sub(half)},
	}
}
