package field

import (
	"fmt"
	"math"
)

// Frame maps a shape's font-unit coordinates into a fixed pixel cell.
// The shape's bounding box, expanded by the distance range, is scaled
// uniformly to fit the cell and centered within it.
type Frame struct {
	// Width and Height are the cell dimensions in pixels.
	Width, Height int

	// Range is the distance-field range in pixels.
	Range float64

	// Scale is the uniform scale factor (pixels per font unit).
	Scale float64

	// TranslateX and TranslateY position the scaled shape in the cell.
	TranslateX, TranslateY float64

	// Bounds is the framed region in font units (shape bounds expanded
	// by the range).
	Bounds Rect
}

// FrameError reports that a shape could not be fit into its cell.
type FrameError struct {
	Width, Height int
	Range         float64
	Scale         float64
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("field: cannot frame shape in %dx%d cell at range %g (scale %g)",
		e.Width, e.Height, e.Range, e.Scale)
}

// FrameShape computes the frame that fits bounds, expanded by rng
// pixels on all sides, into a width x height cell.
//
// It fails when the cell cannot accommodate the range padding, or when
// the required scale is non-positive or non-finite (degenerate outline
// data such as a zero-area bounding box). Callers should treat empty
// outlines as valid advance-only glyphs and not call FrameShape at all.
func FrameShape(bounds Rect, width, height int, rng float64) (Frame, error) {
	availW := float64(width) - 2*rng
	availH := float64(height) - 2*rng
	if availW <= 0 || availH <= 0 {
		return Frame{}, &FrameError{Width: width, Height: height, Range: rng}
	}

	w := bounds.Width()
	h := bounds.Height()

	scale := math.Min(availW/w, availH/h)
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return Frame{}, &FrameError{Width: width, Height: height, Range: rng, Scale: scale}
	}

	// Expand by the range in font units so the field reaches its full
	// extent before clamping at the cell border.
	expanded := bounds.Expand(rng / scale)

	// Center the occupied region: with uniform scaling the non-limiting
	// axis does not fill the cell.
	occupiedW := expanded.Width() * scale
	occupiedH := expanded.Height() * scale
	translateX := (float64(width) - occupiedW) / 2
	translateY := (float64(height) - occupiedH) / 2

	return Frame{
		Width:      width,
		Height:     height,
		Range:      rng,
		Scale:      scale,
		TranslateX: translateX,
		TranslateY: translateY,
		Bounds:     expanded,
	}, nil
}

// Project converts font-unit coordinates to pixel coordinates.
func (f Frame) Project(p Point) Point {
	return Point{
		X: (p.X-f.Bounds.MinX)*f.Scale + f.TranslateX,
		Y: (p.Y-f.Bounds.MinY)*f.Scale + f.TranslateY,
	}
}

// Unproject converts pixel coordinates back to font units.
func (f Frame) Unproject(p Point) Point {
	return Point{
		X: (p.X-f.TranslateX)/f.Scale + f.Bounds.MinX,
		Y: (p.Y-f.TranslateY)/f.Scale + f.Bounds.MinY,
	}
}
