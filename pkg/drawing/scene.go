package drawing

import (
	"github.com/platecad/platecad/pkg/plate"
	"github.com/platecad/platecad/pkg/units"
)

// ViewConfig carries the presentation-layer inputs the scene depends
// on. It is passed explicitly into every build; nothing here lives as
// ambient state alongside the geometry.
type ViewConfig struct {
	Unit           units.Unit
	Precision      int
	Zoom           float64
	ShowDimensions bool
}

// DefaultView returns the initial view configuration.
func DefaultView() ViewConfig {
	return ViewConfig{
		Unit:           units.Imperial,
		Precision:      2,
		Zoom:           MinZoom,
		ShowDimensions: true,
	}
}

// Normalized returns the view with zoom and precision clamped.
func (v ViewConfig) Normalized() ViewConfig {
	v.Zoom = ClampZoom(v.Zoom)
	v.Precision = units.ClampPrecision(v.Precision)
	return v
}

// Scene layout constants, in pixels.
const (
	// SceneMargin pads the viewport so dimension lines and labels
	// outside the plate outline stay on the canvas.
	SceneMargin = 56.0

	// dimOffset displaces dimension lines from the measured edges.
	dimOffset = 28.0

	// axisOverhang extends the center-line guides past the plate.
	axisOverhang = 14.0
)

// DiameterPrefix marks the slot width label.
const DiameterPrefix = "⌀"

// Scene is the full renderable description of one drawing: plate
// outline, section hatching, slot, axis guides, and dimension
// annotations, all in pixel coordinates with the origin at the plate
// center. A Scene is an immutable snapshot rebuilt on every parameter
// or view change.
type Scene struct {
	Params plate.Parameters
	View   ViewConfig

	// Viewport size in pixels (plate extent plus margins).
	Width  float64
	Height float64

	Plate      Rect
	Hatches    [2]Rect
	Slot       Rect
	Axes       [2]Line
	Dimensions []Dimension
}

// BuildScene assembles the scene for one parameter set and view. The
// build is deterministic: equal inputs produce an equal Scene.
func BuildScene(p plate.Parameters, view ViewConfig) Scene {
	p = p.Clamped()
	view = view.Normalized()

	w := Project(p.Width, view.Zoom)
	t := Project(p.Thickness, view.Zoom)
	slot := Project(p.SlotWidth, view.Zoom)

	vpW, vpH := Viewport(p, view.Zoom, SceneMargin)

	outline := Rect{X: -w / 2, Y: -t / 2, W: w, H: t}

	s := Scene{
		Params: p,
		View:   view,
		Width:  vpW,
		Height: vpH,
		Plate:  outline,
		// Cross-section fill: two hatch passes over the plate bounds,
		// rendered beneath the outline.
		Hatches: [2]Rect{outline, outline},
		Slot:    Rect{X: -slot / 2, Y: -t / 2, W: slot, H: t},
		Axes: [2]Line{
			{A: Point{X: -w/2 - axisOverhang}, B: Point{X: w/2 + axisOverhang}},
			{A: Point{Y: -t/2 - axisOverhang}, B: Point{Y: t/2 + axisOverhang}},
		},
	}

	if view.ShowDimensions {
		s.Dimensions = buildDimensions(p, view, w, t, slot)
	}
	return s
}

// buildDimensions creates the three standard annotations: overall
// width below the plate, thickness to the left, slot width above.
func buildDimensions(p plate.Parameters, view ViewConfig, w, t, slot float64) []Dimension {
	widthLabel := units.FormatDecimal(p.Width, view.Unit, view.Precision)
	if view.Unit == units.Imperial {
		widthLabel = units.FormatEngineering(p.Width, view.Precision)
	}
	thicknessLabel := units.FormatDecimal(p.Thickness, view.Unit, view.Precision)
	slotLabel := DiameterPrefix + units.FormatDecimal(p.SlotWidth, view.Unit, view.Precision)

	return []Dimension{
		// Overall width along the bottom edge; positive offset pushes
		// the line below the plate.
		BuildDimension(
			Point{X: -w / 2, Y: t / 2},
			Point{X: w / 2, Y: t / 2},
			dimOffset, widthLabel, 0,
		),
		// Thickness along the left edge, label rotated vertical.
		BuildDimension(
			Point{X: -w / 2, Y: -t / 2},
			Point{X: -w / 2, Y: t / 2},
			dimOffset, thicknessLabel, -90,
		),
		// Slot width along the top edge.
		BuildDimension(
			Point{X: slot / 2, Y: -t / 2},
			Point{X: -slot / 2, Y: -t / 2},
			dimOffset, slotLabel, 0,
		),
	}
}

// Bounds returns the extent of all scene geometry, dimension lines and
// extension lines included. Exporters use this to verify everything
// fits the declared viewport.
func (s Scene) Bounds() BoundingBox {
	bbox := NewBoundingBox()
	bbox.ExpandRect(s.Plate)
	bbox.ExpandRect(s.Slot)
	for _, axis := range s.Axes {
		bbox.Expand(axis.A)
		bbox.Expand(axis.B)
	}
	for _, dim := range s.Dimensions {
		bbox.Expand(dim.Ext1.A)
		bbox.Expand(dim.Ext1.B)
		bbox.Expand(dim.Ext2.A)
		bbox.Expand(dim.Ext2.B)
		bbox.Expand(dim.LabelPos)
	}
	return bbox
}
