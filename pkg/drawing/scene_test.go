package drawing

import (
	"reflect"
	"testing"

	"github.com/platecad/platecad/pkg/plate"
	"github.com/platecad/platecad/pkg/units"
)

func defaultScene() Scene {
	return BuildScene(plate.Defaults(), DefaultView())
}

func TestBuildSceneGeometry(t *testing.T) {
	s := defaultScene()

	// width=10, zoom=2.5 -> 200 px; thickness=2.5 -> 50 px.
	wantPlate := Rect{X: -100, Y: -25, W: 200, H: 50}
	if s.Plate != wantPlate {
		t.Errorf("plate = %+v, want %+v", s.Plate, wantPlate)
	}
	wantSlot := Rect{X: -25, Y: -25, W: 50, H: 50}
	if s.Slot != wantSlot {
		t.Errorf("slot = %+v, want %+v", s.Slot, wantSlot)
	}
	if s.Hatches[0] != wantPlate || s.Hatches[1] != wantPlate {
		t.Errorf("hatch regions = %+v", s.Hatches)
	}
	if s.Width != 200+2*SceneMargin || s.Height != 50+2*SceneMargin {
		t.Errorf("viewport = %v x %v", s.Width, s.Height)
	}
}

func TestBuildSceneLabels(t *testing.T) {
	s := defaultScene()
	if len(s.Dimensions) != 3 {
		t.Fatalf("dimensions = %d, want 3", len(s.Dimensions))
	}
	want := []string{"0'-10.00\"", "2.50\"", "⌀2.50\""}
	for i, dim := range s.Dimensions {
		if dim.Label != want[i] {
			t.Errorf("dimension %d label = %q, want %q", i, dim.Label, want[i])
		}
	}
	if s.Dimensions[1].LabelRotation != -90 {
		t.Errorf("thickness label rotation = %v", s.Dimensions[1].LabelRotation)
	}
}

func TestBuildSceneMetricLabels(t *testing.T) {
	view := DefaultView()
	view.Unit = units.Metric
	view.Precision = 1
	s := BuildScene(plate.Defaults(), view)
	want := []string{"254.0 mm", "63.5 mm", "⌀63.5 mm"}
	for i, dim := range s.Dimensions {
		if dim.Label != want[i] {
			t.Errorf("dimension %d label = %q, want %q", i, dim.Label, want[i])
		}
	}
}

func TestBuildSceneHidesDimensions(t *testing.T) {
	view := DefaultView()
	view.ShowDimensions = false
	s := BuildScene(plate.Defaults(), view)
	if len(s.Dimensions) != 0 {
		t.Errorf("dimensions = %d, want 0", len(s.Dimensions))
	}
}

func TestBuildSceneClampsInputs(t *testing.T) {
	view := DefaultView()
	view.Zoom = 100
	view.Precision = 99
	s := BuildScene(plate.Parameters{Width: 1000, Thickness: 1000, SlotWidth: 1000}, view)
	if s.Params.Width != 36 || s.Params.Thickness != 10 {
		t.Errorf("params not clamped: %+v", s.Params)
	}
	if s.View.Zoom != MaxZoom || s.View.Precision != units.MaxPrecision {
		t.Errorf("view not normalized: %+v", s.View)
	}
}

func TestBuildSceneDeterministic(t *testing.T) {
	a := defaultScene()
	b := defaultScene()
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different scenes")
	}
}

func TestSceneBoundsIncludeDimensions(t *testing.T) {
	s := defaultScene()
	bbox := s.Bounds()
	// The width dimension line sits below the plate outline.
	if bbox.Max.Y <= s.Plate.Y+s.Plate.H {
		t.Errorf("bounds ignore dimension lines: %+v", bbox)
	}
	w, h := bbox.Max.X-bbox.Min.X, bbox.Max.Y-bbox.Min.Y
	if w > s.Width || h > s.Height {
		t.Errorf("scene overflows viewport: bounds %vx%v, viewport %vx%v", w, h, s.Width, s.Height)
	}
}

func TestHatchLines(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 20, H: 10}
	lines := HatchLines(r, 5)
	if len(lines) == 0 {
		t.Fatal("no hatch lines")
	}
	for _, l := range lines {
		for _, p := range []Point{l.A, l.B} {
			if p.X < r.X-1e-9 || p.X > r.X+r.W+1e-9 || p.Y < r.Y-1e-9 || p.Y > r.Y+r.H+1e-9 {
				t.Errorf("hatch point %+v escapes rect", p)
			}
		}
		// 45 degrees: dx == -dy along x+y = const.
		if diff := (l.B.X - l.A.X) + (l.B.Y - l.A.Y); diff > 1e-9 || diff < -1e-9 {
			t.Errorf("hatch line not diagonal: %+v", l)
		}
	}
	if got := HatchLines(Rect{}, 5); got != nil {
		t.Errorf("empty rect produced hatching: %v", got)
	}
}
