package msdfatlas

import (
	"github.com/gogpu/msdfatlas/field"
)

// SegmentOp is the type of an outline path operation.
type SegmentOp uint8

const (
	// OpMoveTo starts a new contour at the target point.
	OpMoveTo SegmentOp = iota

	// OpLineTo draws a line to the target point.
	OpLineTo

	// OpQuadTo draws a quadratic Bezier curve.
	OpQuadTo

	// OpCubeTo draws a cubic Bezier curve.
	OpCubeTo
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpQuadTo:
		return "QuadTo"
	case OpCubeTo:
		return "CubeTo"
	default:
		return "Unknown"
	}
}

// Segment is one command of a glyph outline.
type Segment struct {
	// Op is the path operation.
	Op SegmentOp

	// Args holds the points for the operation:
	// MoveTo/LineTo: Args[0] is the target point.
	// QuadTo: Args[0] is the control, Args[1] the target.
	// CubeTo: Args[0] and Args[1] are controls, Args[2] the target.
	Args [3]field.Point
}

// Outline is a glyph's vector outline in font units, y-up, with the
// glyph origin on the baseline. An outline with no segments is a valid
// empty glyph (whitespace); it still carries an advance.
type Outline struct {
	// GID is the glyph this outline belongs to.
	GID GlyphID

	// Segments is the ordered list of path commands.
	Segments []Segment

	// Bounds is the bounding box of the control points in font units.
	// Zero for empty outlines.
	Bounds field.Rect

	// Advance is the horizontal advance width in font units.
	Advance float64

	// LSB is the left side bearing in font units.
	LSB float64
}

// IsEmpty reports whether the outline has no segments.
func (o *Outline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// Shape decomposes the outline into a contour graph of directed edges.
// Curves are kept as curves; degenerate edges are dropped.
func (o *Outline) Shape() *field.Shape {
	b := field.NewShapeBuilder()
	for _, seg := range o.Segments {
		switch seg.Op {
		case OpMoveTo:
			b.MoveTo(seg.Args[0])
		case OpLineTo:
			b.LineTo(seg.Args[0])
		case OpQuadTo:
			b.QuadTo(seg.Args[0], seg.Args[1])
		case OpCubeTo:
			b.CubeTo(seg.Args[0], seg.Args[1], seg.Args[2])
		}
	}
	return b.Shape()
}
