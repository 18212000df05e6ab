package drawing

import (
	"testing"

	"github.com/platecad/platecad/pkg/plate"
)

func TestClampZoom(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{1.0, 2.5},
		{2.5, 2.5},
		{3.7, 3.7},
		{5.0, 5.0},
		{9.9, 5.0},
	}
	for _, tt := range tests {
		if got := ClampZoom(tt.in); got != tt.want {
			t.Errorf("ClampZoom(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProject(t *testing.T) {
	if got := PixelsPerUnit(2.5); got != 20 {
		t.Errorf("PixelsPerUnit(2.5) = %v, want 20", got)
	}
	if got := Project(10, 2.5); got != 200 {
		t.Errorf("Project(10, 2.5) = %v, want 200", got)
	}
	// Uniform scale: the same factor applies regardless of axis use.
	if Project(2.5, 4) != 2.5*PixelsPerInch*4 {
		t.Error("projection not linear in coordinate")
	}
}

func TestViewport(t *testing.T) {
	p := plate.Parameters{Width: 10, Thickness: 2.5, SlotWidth: 2.5}
	w, h := Viewport(p, 2.5, 40)
	if w != 280 {
		t.Errorf("viewport width = %v, want 280", w)
	}
	if h != 130 {
		t.Errorf("viewport height = %v, want 130", h)
	}
}
