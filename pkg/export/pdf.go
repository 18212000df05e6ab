package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/platecad/platecad/pkg/drawing"
	"github.com/platecad/platecad/pkg/units"
)

// PDF renders the scene as a single-page A4 landscape sheet: a title
// block listing the parameters in the current display unit, followed
// by the dimensioned drawing.
func PDF(s drawing.Scene) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "Slotted Plate")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	u, prec := s.View.Unit, s.View.Precision
	rows := []struct{ name, value string }{
		{"Width", units.FormatDecimal(s.Params.Width, u, prec)},
		{"Thickness", units.FormatDecimal(s.Params.Thickness, u, prec)},
		{"Slot width", units.FormatDecimal(s.Params.SlotWidth, u, prec)},
		{"Units", u.String()},
	}
	for _, row := range rows {
		pdf.CellFormat(30, 6, row.name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, tr(row.value), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	drawScene(pdf, tr, s)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// drawScene maps the pixel-space scene onto the sheet's drawing area.
func drawScene(pdf *gofpdf.Fpdf, tr func(string) string, s drawing.Scene) {
	// Drawing area below the title block, in mm.
	const areaX, areaY, areaW, areaH = 20.0, 55.0, 257.0, 140.0

	scale := areaW / s.Width
	if v := areaH / s.Height; v < scale {
		scale = v
	}
	cx := areaX + areaW/2
	cy := areaY + areaH/2
	px := func(p drawing.Point) (float64, float64) {
		return cx + p.X*scale, cy + p.Y*scale
	}

	// Hatching.
	pdf.SetDrawColor(138, 155, 176)
	pdf.SetLineWidth(0.15)
	for _, region := range s.Hatches {
		for _, l := range drawing.HatchLines(region, hatchSpacing) {
			x1, y1 := px(l.A)
			x2, y2 := px(l.B)
			pdf.Line(x1, y1, x2, y2)
		}
	}

	// Slot masks the hatching, then outlines.
	pdf.SetFillColor(255, 255, 255)
	pdf.SetDrawColor(26, 26, 26)
	pdf.SetLineWidth(0.3)
	sx, sy := px(drawing.Point{X: s.Slot.X, Y: s.Slot.Y})
	pdf.Rect(sx, sy, s.Slot.W*scale, s.Slot.H*scale, "FD")

	pdf.SetLineWidth(0.45)
	ox, oy := px(drawing.Point{X: s.Plate.X, Y: s.Plate.Y})
	pdf.Rect(ox, oy, s.Plate.W*scale, s.Plate.H*scale, "D")

	// Center-line guides.
	pdf.SetDrawColor(176, 64, 64)
	pdf.SetLineWidth(0.2)
	pdf.SetDashPattern([]float64{2.5, 1, 0.5, 1}, 0)
	for _, axis := range s.Axes {
		x1, y1 := px(axis.A)
		x2, y2 := px(axis.B)
		pdf.Line(x1, y1, x2, y2)
	}
	pdf.SetDashPattern([]float64{}, 0)

	// Dimensions.
	pdf.SetDrawColor(32, 64, 160)
	pdf.SetFillColor(32, 64, 160)
	pdf.SetTextColor(32, 64, 160)
	pdf.SetLineWidth(0.2)
	pdf.SetFont("Arial", "", 8)
	for _, dim := range s.Dimensions {
		for _, l := range []drawing.Line{dim.Ext1, dim.Ext2, dim.Span} {
			x1, y1 := px(l.A)
			x2, y2 := px(l.B)
			pdf.Line(x1, y1, x2, y2)
		}
		for _, head := range dim.ArrowHeads(arrowSize) {
			pts := make([]gofpdf.PointType, 0, 3)
			for _, p := range head {
				x, y := px(p)
				pts = append(pts, gofpdf.PointType{X: x, Y: y})
			}
			pdf.Polygon(pts, "F")
		}

		label := pdfLabel(tr, dim.Label)
		lx, ly := px(dim.LabelPos)
		half := pdf.GetStringWidth(label) / 2
		if dim.LabelRotation != 0 {
			pdf.TransformBegin()
			pdf.TransformRotate(-dim.LabelRotation, lx, ly)
			pdf.Text(lx-half, ly, label)
			pdf.TransformEnd()
			continue
		}
		pdf.Text(lx-half, ly, label)
	}
	pdf.SetTextColor(0, 0, 0)
}

// pdfLabel maps the diameter symbol into the core-font repertoire; the
// standard PDF fonts have no U+2300.
func pdfLabel(tr func(string) string, label string) string {
	return tr(strings.ReplaceAll(label, drawing.DiameterPrefix, "Ø"))
}
