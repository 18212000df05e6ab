// Package export serializes a drawing scene to the downloadable
// artifacts: a self-contained SVG vector image and a PDF sheet. The
// parameter JSON document lives with the plate package.
package export

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo/float"

	"github.com/platecad/platecad/pkg/drawing"
)

// Element styles. Kept as constants so repeated exports of the same
// scene are byte-identical.
const (
	styleHatch   = "stroke:#8a9bb0;stroke-width:0.6"
	styleOutline = "fill:none;stroke:#1a1a1a;stroke-width:1.6"
	styleSlot    = "fill:#ffffff;stroke:#1a1a1a;stroke-width:1.2"
	styleAxis    = "stroke:#b04040;stroke-width:0.8;stroke-dasharray:10,4,2,4"
	styleDimLine = "stroke:#2040a0;stroke-width:0.8"
	styleArrow   = "fill:#2040a0;stroke:none"
	styleLabel   = "text-anchor:middle;font-size:11px;font-family:sans-serif;fill:#2040a0"

	hatchSpacing = 7.0
	arrowSize    = 8.0
)

// SVG renders the scene as a standalone SVG document. The viewBox is
// centered on the plate origin and sized to the computed viewport, so
// the file renders identically when reloaded on its own. Output is
// deterministic: equal scenes serialize to equal bytes.
func SVG(s drawing.Scene) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(s.Width, s.Height, -s.Width/2, -s.Height/2, s.Width, s.Height)

	// Section hatching under everything else.
	for _, region := range s.Hatches {
		for _, l := range drawing.HatchLines(region, hatchSpacing) {
			canvas.Line(l.A.X, l.A.Y, l.B.X, l.B.Y, styleHatch)
		}
	}

	// Slot cuts through the hatched section; the fill masks the
	// hatching behind it.
	canvas.Rect(s.Slot.X, s.Slot.Y, s.Slot.W, s.Slot.H, styleSlot)
	canvas.Rect(s.Plate.X, s.Plate.Y, s.Plate.W, s.Plate.H, styleOutline)

	for _, axis := range s.Axes {
		canvas.Line(axis.A.X, axis.A.Y, axis.B.X, axis.B.Y, styleAxis)
	}

	for _, dim := range s.Dimensions {
		writeDimension(canvas, dim)
	}

	canvas.End()
	return buf.Bytes()
}

func writeDimension(canvas *svg.SVG, dim drawing.Dimension) {
	canvas.Line(dim.Ext1.A.X, dim.Ext1.A.Y, dim.Ext1.B.X, dim.Ext1.B.Y, styleDimLine)
	canvas.Line(dim.Ext2.A.X, dim.Ext2.A.Y, dim.Ext2.B.X, dim.Ext2.B.Y, styleDimLine)
	canvas.Line(dim.Span.A.X, dim.Span.A.Y, dim.Span.B.X, dim.Span.B.Y, styleDimLine)

	for _, head := range dim.ArrowHeads(arrowSize) {
		xs := []float64{head[0].X, head[1].X, head[2].X}
		ys := []float64{head[0].Y, head[1].Y, head[2].Y}
		canvas.Polygon(xs, ys, styleArrow)
	}

	if dim.LabelRotation != 0 {
		canvas.Gtransform(fmt.Sprintf("rotate(%g %g %g)",
			dim.LabelRotation, dim.LabelPos.X, dim.LabelPos.Y))
		canvas.Text(dim.LabelPos.X, dim.LabelPos.Y, dim.Label, styleLabel)
		canvas.Gend()
		return
	}
	canvas.Text(dim.LabelPos.X, dim.LabelPos.Y, dim.Label, styleLabel)
}
