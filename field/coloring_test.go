package field

import (
	"math"
	"testing"
)

// twoChannel reports whether m is one of the two-channel palette masks.
func twoChannel(m ChannelMask) bool {
	return m == MaskCyan || m == MaskMagenta || m == MaskYellow
}

func TestAssignMasksSquare(t *testing.T) {
	shape := buildSquare(t)
	AssignMasks(shape, math.Pi/3)

	c := shape.Contours[0]
	for i := range c.Edges {
		if !twoChannel(c.Edges[i].Mask) {
			t.Errorf("edge %d Mask = %v, want a two-channel mask", i, c.Edges[i].Mask)
		}
	}

	// Every corner of the square is sharp, so adjacent edges must not
	// share a full mask.
	n := len(c.Edges)
	for i := range c.Edges {
		next := (i + 1) % n
		if c.Edges[i].Mask == c.Edges[next].Mask {
			t.Errorf("edges %d and %d share mask %v across a corner", i, next, c.Edges[i].Mask)
		}
	}
}

func TestAssignMasksAdjacentMasksShareChannel(t *testing.T) {
	// Palette masks pairwise share exactly one channel, so the median
	// stays well defined across a corner.
	shape := buildSquare(t)
	AssignMasks(shape, math.Pi/3)

	c := shape.Contours[0]
	n := len(c.Edges)
	for i := range c.Edges {
		a := c.Edges[i].Mask
		b := c.Edges[(i+1)%n].Mask
		if a&b == MaskNone {
			t.Errorf("edges %d and %d have disjoint masks %v, %v", i, (i+1)%n, a, b)
		}
	}
}

func TestAssignMasksSmoothContour(t *testing.T) {
	// A diamond with a high threshold registers no corners; the edge
	// list splits into thirds so every channel keeps the contour.
	b := NewShapeBuilder()
	b.MoveTo(Point{X: 0, Y: -10})
	b.LineTo(Point{X: 10, Y: 0})
	b.LineTo(Point{X: 0, Y: 10})
	b.LineTo(Point{X: -10, Y: 0})
	b.Close()
	shape := b.Shape()

	AssignMasks(shape, math.Pi-0.01)

	var hasRed, hasGreen, hasBlue bool
	for _, e := range shape.Contours[0].Edges {
		if !twoChannel(e.Mask) {
			t.Errorf("Mask = %v, want a two-channel mask", e.Mask)
		}
		hasRed = hasRed || e.Mask.HasRed()
		hasGreen = hasGreen || e.Mask.HasGreen()
		hasBlue = hasBlue || e.Mask.HasBlue()
	}
	if !hasRed || !hasGreen || !hasBlue {
		t.Error("smooth contour does not cover all three channels")
	}
}

func TestAssignMasksSingleEdgeContour(t *testing.T) {
	// One closed cubic: nothing to split, all channels carry it.
	b := NewShapeBuilder()
	b.MoveTo(Point{X: 0, Y: 0})
	b.CubeTo(Point{X: 20, Y: 20}, Point{X: -20, Y: 20}, Point{X: 0, Y: 0})
	shape := b.Shape()

	if got := shape.EdgeCount(); got != 1 {
		t.Fatalf("EdgeCount = %d, want 1", got)
	}

	AssignMasks(shape, math.Pi/3)
	if got := shape.Contours[0].Edges[0].Mask; got != MaskWhite {
		t.Errorf("single-edge Mask = %v, want White", got)
	}
}

func TestAssignMasksDeterministic(t *testing.T) {
	threshold := math.Pi / 3

	shapeA := buildSquare(t)
	shapeB := buildSquare(t)
	AssignMasks(shapeA, threshold)
	AssignMasks(shapeB, threshold)

	ea := shapeA.Contours[0].Edges
	eb := shapeB.Contours[0].Edges
	for i := range ea {
		if ea[i].Mask != eb[i].Mask {
			t.Errorf("edge %d: mask %v vs %v across runs", i, ea[i].Mask, eb[i].Mask)
		}
	}
}

func TestCornerIndices(t *testing.T) {
	shape := buildSquare(t)
	corners := cornerIndices(shape.Contours[0], math.Pi/3)

	if len(corners) != 4 {
		t.Fatalf("corners = %v, want 4 entries", corners)
	}
	for i, idx := range corners {
		if idx != i {
			t.Errorf("corners = %v, want [0 1 2 3]", corners)
			break
		}
	}

	// Above a right angle no vertex qualifies.
	corners = cornerIndices(shape.Contours[0], math.Pi/2+0.01)
	if len(corners) != 0 {
		t.Errorf("corners above threshold = %v, want none", corners)
	}
}
