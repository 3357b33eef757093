package field

import "math"

// degenerateEpsilonSq is the squared length below which an edge is
// considered zero-length and dropped during shape construction.
const degenerateEpsilonSq = 1e-12

// Contour is a closed loop of directed edges.
type Contour struct {
	// Edges is the list of edges that form this contour.
	Edges []Edge

	// Winding is the signed area of the contour (shoelace formula).
	// Positive = counter-clockwise, negative = clockwise.
	Winding float64
}

// Bounds returns the bounding box of all edges in the contour.
func (c *Contour) Bounds() Rect {
	if len(c.Edges) == 0 {
		return Rect{}
	}

	bounds := c.Edges[0].Bounds()
	for i := 1; i < len(c.Edges); i++ {
		bounds = bounds.Union(c.Edges[i].Bounds())
	}
	return bounds
}

// calculateWinding computes and stores the shoelace signed area.
func (c *Contour) calculateWinding() {
	var area float64
	for i := range c.Edges {
		p0 := c.Edges[i].Start()
		p1 := c.Edges[i].End()
		area += p0.Cross(p1)
	}
	c.Winding = area / 2
}

// IsClosed reports whether the last edge's end meets the first edge's
// start within floating-point tolerance.
func (c *Contour) IsClosed() bool {
	if len(c.Edges) == 0 {
		return true
	}
	first := c.Edges[0].Start()
	last := c.Edges[len(c.Edges)-1].End()
	return math.Abs(first.X-last.X) <= 1e-6 && math.Abs(first.Y-last.Y) <= 1e-6
}

// Shape is a complete glyph shape: a set of closed contours.
type Shape struct {
	// Contours are the closed paths that make up the shape.
	Contours []*Contour

	// Bounds is the overall bounding box.
	Bounds Rect
}

// IsEmpty reports whether the shape has no edges at all.
func (s *Shape) IsEmpty() bool {
	return s.EdgeCount() == 0
}

// EdgeCount returns the total number of edges across all contours.
func (s *Shape) EdgeCount() int {
	count := 0
	for _, c := range s.Contours {
		count += len(c.Edges)
	}
	return count
}

// Validate reports whether every contour of the shape is closed.
func (s *Shape) Validate() bool {
	for _, contour := range s.Contours {
		if !contour.IsClosed() {
			return false
		}
	}
	return true
}

// WindingAt returns the nonzero winding number of the shape at p,
// computed by summing signed crossings of a horizontal ray from p.
// Nonzero means p is inside the filled region.
func (s *Shape) WindingAt(p Point) int {
	winding := 0
	for _, contour := range s.Contours {
		for i := range contour.Edges {
			winding += contour.Edges[i].Crossings(p.X, p.Y)
		}
	}
	return winding
}

// calculateBounds computes and stores the overall bounding box.
func (s *Shape) calculateBounds() {
	if len(s.Contours) == 0 {
		s.Bounds = Rect{}
		return
	}

	s.Bounds = s.Contours[0].Bounds()
	for i := 1; i < len(s.Contours); i++ {
		s.Bounds = s.Bounds.Union(s.Contours[i].Bounds())
	}
}

// ShapeBuilder assembles a Shape from path commands in font units.
// Degenerate edges (zero length) and empty contours are dropped, and
// open contours are closed with a line back to their start point.
type ShapeBuilder struct {
	shape   *Shape
	current *Contour
	start   Point
	pos     Point
	open    bool
}

// NewShapeBuilder creates an empty builder.
func NewShapeBuilder() *ShapeBuilder {
	return &ShapeBuilder{shape: &Shape{}}
}

// MoveTo starts a new contour at p.
func (b *ShapeBuilder) MoveTo(p Point) {
	b.closeCurrent()
	b.current = &Contour{}
	b.start = p
	b.pos = p
	b.open = true
}

// LineTo appends a line edge to the current contour.
func (b *ShapeBuilder) LineTo(p Point) {
	if !b.open {
		b.MoveTo(p)
		return
	}
	if p.Sub(b.pos).LengthSquared() > degenerateEpsilonSq {
		b.current.Edges = append(b.current.Edges, Line(b.pos, p))
	}
	b.pos = p
}

// QuadTo appends a quadratic Bezier edge to the current contour.
func (b *ShapeBuilder) QuadTo(control, p Point) {
	if !b.open {
		b.MoveTo(p)
		return
	}
	if p.Sub(b.pos).LengthSquared() <= degenerateEpsilonSq &&
		control.Sub(b.pos).LengthSquared() <= degenerateEpsilonSq {
		b.pos = p
		return
	}
	b.current.Edges = append(b.current.Edges, Quad(b.pos, control, p))
	b.pos = p
}

// CubeTo appends a cubic Bezier edge to the current contour.
func (b *ShapeBuilder) CubeTo(control1, control2, p Point) {
	if !b.open {
		b.MoveTo(p)
		return
	}
	if p.Sub(b.pos).LengthSquared() <= degenerateEpsilonSq &&
		control1.Sub(b.pos).LengthSquared() <= degenerateEpsilonSq &&
		control2.Sub(b.pos).LengthSquared() <= degenerateEpsilonSq {
		b.pos = p
		return
	}
	b.current.Edges = append(b.current.Edges, Cubic(b.pos, control1, control2, p))
	b.pos = p
}

// Close explicitly closes the current contour.
func (b *ShapeBuilder) Close() {
	b.closeCurrent()
}

// Shape finishes the build and returns the assembled shape.
// The builder must not be reused afterwards.
func (b *ShapeBuilder) Shape() *Shape {
	b.closeCurrent()
	b.shape.calculateBounds()
	return b.shape
}

// closeCurrent seals the in-progress contour: adds the closing line if
// the path did not return to its start, drops empty contours.
func (b *ShapeBuilder) closeCurrent() {
	if !b.open {
		return
	}
	b.open = false

	if b.start.Sub(b.pos).LengthSquared() > degenerateEpsilonSq {
		b.current.Edges = append(b.current.Edges, Line(b.pos, b.start))
	}

	if len(b.current.Edges) == 0 {
		b.current = nil
		return
	}

	b.current.calculateWinding()
	b.shape.Contours = append(b.shape.Contours, b.current)
	b.current = nil
}
