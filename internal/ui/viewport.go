package ui

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/platecad/platecad/pkg/drawing"
)

const uiHatchSpacing = 7.0

var (
	colorCanvas   = color.NRGBA{R: 252, G: 252, B: 254, A: 255}
	colorHatch    = color.NRGBA{R: 138, G: 155, B: 176, A: 255}
	colorOutline  = color.NRGBA{R: 26, G: 26, B: 26, A: 255}
	colorSlotFill = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorAxis     = color.NRGBA{R: 176, G: 64, B: 64, A: 255}
	colorDim      = color.NRGBA{R: 32, G: 64, B: 160, A: 255}
)

type viewportState struct {
	scroll gesture.Scroll
}

// layoutViewport renders the assembled scene centered in the remaining
// window area. The scroll wheel adjusts zoom within the clamp range.
func (a *App) layoutViewport(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, colorCanvas)

	a.viewport.scroll.Add(gtx.Ops)
	dist := a.viewport.scroll.Update(gtx.Metric, gtx.Source, gtx.Now, gesture.Vertical,
		pointer.ScrollRange{}, pointer.ScrollRange{})
	if dist != 0 {
		a.view.Zoom = drawing.ClampZoom(a.view.Zoom * (1.0 - float64(dist)*0.002))
		a.saveView()
		gtx.Execute(op.InvalidateCmd{})
	}

	scene := drawing.BuildScene(a.store.Current(), a.view)

	// Scene coordinates are centered on the plate origin.
	offset := op.Offset(image.Pt(size.X/2, size.Y/2)).Push(gtx.Ops)
	renderScene(gtx, a.Theme, scene)
	offset.Pop()

	return layout.Dimensions{Size: size}
}

func renderScene(gtx layout.Context, theme *material.Theme, s drawing.Scene) {
	for _, region := range s.Hatches {
		for _, l := range drawing.HatchLines(region, uiHatchSpacing) {
			renderLine(gtx, l, 0.6, colorHatch)
		}
	}

	fillRect(gtx, s.Slot, colorSlotFill)
	strokeRect(gtx, s.Slot, 1.2, colorOutline)
	strokeRect(gtx, s.Plate, 1.6, colorOutline)

	for _, axis := range s.Axes {
		renderLine(gtx, axis, 0.8, colorAxis)
	}

	for _, dim := range s.Dimensions {
		renderDimension(gtx, theme, dim)
	}
}

func renderDimension(gtx layout.Context, theme *material.Theme, dim drawing.Dimension) {
	renderLine(gtx, dim.Ext1, 0.8, colorDim)
	renderLine(gtx, dim.Ext2, 0.8, colorDim)
	renderLine(gtx, dim.Span, 0.8, colorDim)

	for _, head := range dim.ArrowHeads(8) {
		var path clip.Path
		path.Begin(gtx.Ops)
		path.MoveTo(f32.Pt(float32(head[0].X), float32(head[0].Y)))
		path.LineTo(f32.Pt(float32(head[1].X), float32(head[1].Y)))
		path.LineTo(f32.Pt(float32(head[2].X), float32(head[2].Y)))
		path.Close()
		paint.FillShape(gtx.Ops, colorDim, clip.Outline{Path: path.End()}.Op())
	}

	renderDimensionLabel(gtx, theme, dim)
}

func renderDimensionLabel(gtx layout.Context, theme *material.Theme, dim drawing.Dimension) {
	if dim.Label == "" {
		return
	}

	const fontSize = 11.0
	// Rough centering; good enough for short dimension labels.
	textWidth := float32(len([]rune(dim.Label))) * fontSize * 0.55

	stack := op.Affine(f32.Affine2D{}.Offset(
		f32.Pt(float32(dim.LabelPos.X), float32(dim.LabelPos.Y)))).Push(gtx.Ops)
	defer stack.Pop()

	if dim.LabelRotation != 0 {
		radians := dim.LabelRotation * math.Pi / 180.0
		rot := f32.Affine2D{}.Rotate(f32.Pt(0, 0), float32(radians))
		op.Affine(rot).Add(gtx.Ops)
	}
	op.Affine(f32.Affine2D{}.Offset(f32.Pt(-textWidth/2, 0))).Add(gtx.Ops)

	lbl := material.Label(theme, unit.Sp(fontSize), dim.Label)
	lbl.Color = colorDim
	lbl.Layout(gtx)
}

// renderLine renders a line with given width
func renderLine(gtx layout.Context, l drawing.Line, width float64, lineColor color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(l.A.X), float32(l.A.Y)))
	path.LineTo(f32.Pt(float32(l.B.X), float32(l.B.Y)))

	stroke := clip.Stroke{
		Path:  path.End(),
		Width: float32(width),
	}.Op()

	paint.FillShape(gtx.Ops, lineColor, stroke)
}

func fillRect(gtx layout.Context, r drawing.Rect, c color.NRGBA) {
	rect := image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
	paint.FillShape(gtx.Ops, c, clip.Rect(rect).Op())
}

func strokeRect(gtx layout.Context, r drawing.Rect, width float64, c color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(r.X), float32(r.Y)))
	path.LineTo(f32.Pt(float32(r.X+r.W), float32(r.Y)))
	path.LineTo(f32.Pt(float32(r.X+r.W), float32(r.Y+r.H)))
	path.LineTo(f32.Pt(float32(r.X), float32(r.Y+r.H)))
	path.Close()

	stroke := clip.Stroke{
		Path:  path.End(),
		Width: float32(width),
	}.Op()

	paint.FillShape(gtx.Ops, c, stroke)
}
