package drawing

import "github.com/platecad/platecad/pkg/plate"

// PixelsPerInch is the base drawing scale before zoom is applied.
const PixelsPerInch = 8.0

// Zoom bounds. Zoom is a view input and is clamped at the boundary, so
// projection itself never sees an out-of-range value.
const (
	MinZoom = 2.5
	MaxZoom = 5.0
)

// ClampZoom restricts a zoom level to the supported range.
func ClampZoom(zoom float64) float64 {
	if zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}
	return zoom
}

// PixelsPerUnit returns the drawing scale in pixels per inch at the
// given zoom. The scale is uniform: both axes use the same factor.
func PixelsPerUnit(zoom float64) float64 {
	return PixelsPerInch * zoom
}

// Project maps a base-unit coordinate to drawing-surface pixels.
func Project(coord, zoom float64) float64 {
	return coord * PixelsPerUnit(zoom)
}

// Viewport returns the pixel size of the drawing surface for a plate at
// the given zoom, with margin pixels of padding on every side. The
// coordinate origin is the geometric center of the plate; shape
// coordinates are expressed as ±width/2, ±thickness/2.
func Viewport(p plate.Parameters, zoom, margin float64) (widthPx, heightPx float64) {
	widthPx = Project(p.Width, zoom) + 2*margin
	heightPx = Project(p.Thickness, zoom) + 2*margin
	return widthPx, heightPx
}
