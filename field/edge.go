package field

import (
	"math"
)

// EdgeKind classifies edge segments by their geometric type.
type EdgeKind int

const (
	// EdgeLinear is a straight line segment between two points.
	EdgeLinear EdgeKind = iota

	// EdgeQuadratic is a quadratic Bezier curve (one control point).
	EdgeQuadratic

	// EdgeCubic is a cubic Bezier curve (two control points).
	EdgeCubic
)

// String returns a string representation of the edge kind.
func (k EdgeKind) String() string {
	switch k {
	case EdgeLinear:
		return "Linear"
	case EdgeQuadratic:
		return "Quadratic"
	case EdgeCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// ChannelMask determines which RGB channels an edge contributes to.
// Distinct masks on the two sides of a corner preserve its sharpness
// when the renderer takes the channel median.
type ChannelMask uint8

const (
	// MaskNone means the edge contributes to no channels.
	MaskNone ChannelMask = 0

	// MaskRed means the edge contributes to the red channel.
	MaskRed ChannelMask = 1 << iota

	// MaskGreen means the edge contributes to the green channel.
	MaskGreen

	// MaskBlue means the edge contributes to the blue channel.
	MaskBlue

	// MaskYellow combines red and green channels.
	MaskYellow = MaskRed | MaskGreen

	// MaskCyan combines green and blue channels.
	MaskCyan = MaskGreen | MaskBlue

	// MaskMagenta combines red and blue channels.
	MaskMagenta = MaskRed | MaskBlue

	// MaskWhite means the edge contributes to all channels.
	MaskWhite = MaskRed | MaskGreen | MaskBlue
)

// String returns a string representation of the channel mask.
func (m ChannelMask) String() string {
	switch m {
	case MaskNone:
		return "None"
	case MaskRed:
		return "Red"
	case MaskGreen:
		return "Green"
	case MaskBlue:
		return "Blue"
	case MaskYellow:
		return "Yellow"
	case MaskCyan:
		return "Cyan"
	case MaskMagenta:
		return "Magenta"
	case MaskWhite:
		return "White"
	default:
		return "Unknown"
	}
}

// HasRed reports whether the mask includes the red channel.
func (m ChannelMask) HasRed() bool { return m&MaskRed != 0 }

// HasGreen reports whether the mask includes the green channel.
func (m ChannelMask) HasGreen() bool { return m&MaskGreen != 0 }

// HasBlue reports whether the mask includes the blue channel.
func (m ChannelMask) HasBlue() bool { return m&MaskBlue != 0 }

// Edge is a single directed edge segment of a contour.
type Edge struct {
	// Kind is the geometric type of this edge.
	Kind EdgeKind

	// Points contains the control and end points:
	// Linear: P0 (start), P1 (end)
	// Quadratic: P0 (start), P1 (control), P2 (end)
	// Cubic: P0 (start), P1 (control1), P2 (control2), P3 (end)
	Points [4]Point

	// Mask determines which channels this edge affects.
	Mask ChannelMask
}

// Line creates a linear edge from start to end.
func Line(start, end Point) Edge {
	return Edge{
		Kind:   EdgeLinear,
		Points: [4]Point{start, end, {}, {}},
		Mask:   MaskWhite,
	}
}

// Quad creates a quadratic Bezier edge.
func Quad(start, control, end Point) Edge {
	return Edge{
		Kind:   EdgeQuadratic,
		Points: [4]Point{start, control, end, {}},
		Mask:   MaskWhite,
	}
}

// Cubic creates a cubic Bezier edge.
func Cubic(start, control1, control2, end Point) Edge {
	return Edge{
		Kind:   EdgeCubic,
		Points: [4]Point{start, control1, control2, end},
		Mask:   MaskWhite,
	}
}

// Start returns the starting point of the edge.
func (e *Edge) Start() Point {
	return e.Points[0]
}

// End returns the ending point of the edge.
func (e *Edge) End() Point {
	switch e.Kind {
	case EdgeLinear:
		return e.Points[1]
	case EdgeQuadratic:
		return e.Points[2]
	case EdgeCubic:
		return e.Points[3]
	default:
		return e.Points[0]
	}
}

// PointAt evaluates the edge at parameter t in [0, 1].
func (e *Edge) PointAt(t float64) Point {
	switch e.Kind {
	case EdgeLinear:
		return e.Points[0].Lerp(e.Points[1], t)
	case EdgeQuadratic:
		return evalQuadratic(e.Points[0], e.Points[1], e.Points[2], t)
	case EdgeCubic:
		return evalCubic(e.Points[0], e.Points[1], e.Points[2], e.Points[3], t)
	default:
		return e.Points[0]
	}
}

// DirectionAt returns the tangent direction at parameter t.
func (e *Edge) DirectionAt(t float64) Point {
	switch e.Kind {
	case EdgeLinear:
		return e.Points[1].Sub(e.Points[0])
	case EdgeQuadratic:
		return quadraticDerivative(e.Points[0], e.Points[1], e.Points[2], t)
	case EdgeCubic:
		return cubicDerivative(e.Points[0], e.Points[1], e.Points[2], e.Points[3], t)
	default:
		return Point{1, 0}
	}
}

// Distance returns the true-distance candidate from p to the edge and
// the curve parameter (clamped to [0, 1]) of the closest point.
func (e *Edge) Distance(p Point) (EdgeDistance, float64) {
	switch e.Kind {
	case EdgeLinear:
		return linearDistance(e.Points[0], e.Points[1], p)
	case EdgeQuadratic:
		return quadraticDistance(e.Points[0], e.Points[1], e.Points[2], p)
	case EdgeCubic:
		return cubicDistance(e.Points[0], e.Points[1], e.Points[2], e.Points[3], p)
	default:
		return Infinite(), 0
	}
}

// PseudoDistance returns the distance candidate with the perpendicular
// endpoint extension applied: when the closest point lies at an edge
// endpoint and p is beyond it, the edge's tangent line is extended so
// adjacent edges meeting at a corner produce no seam.
func (e *Edge) PseudoDistance(p Point) EdgeDistance {
	d, t := e.Distance(p)

	if t <= 0 {
		dir := e.DirectionAt(0).Normalized()
		aq := p.Sub(e.Start())
		if aq.Dot(dir) < 0 {
			pseudo := math.Abs(aq.Cross(dir))
			if pseudo <= d.Distance {
				return EdgeDistance{Distance: pseudo, Dot: 0}
			}
		}
	} else if t >= 1 {
		dir := e.DirectionAt(1).Normalized()
		bq := p.Sub(e.End())
		if bq.Dot(dir) > 0 {
			pseudo := math.Abs(bq.Cross(dir))
			if pseudo <= d.Distance {
				return EdgeDistance{Distance: pseudo, Dot: 0}
			}
		}
	}

	return d
}

// Crossings returns the nonzero-winding contribution of the edge for a
// horizontal ray cast from (x, y) toward +x: the sum of sign(y'(t))
// over its intersections with the ray.
//
// Endpoint intersections follow an include-bottom, exclude-top
// convention: an upward crossing counts at t=0, a downward crossing at
// t=1. A vertex shared by two edges is therefore counted exactly once
// when the contour passes through the scanline and zero times when the
// vertex is a local y-extremum touching it.
func (e *Edge) Crossings(x, y float64) int {
	winding := 0
	for _, t := range e.scanlineParams(y) {
		dy := e.DirectionAt(t).Y
		if t <= 0 && dy < 0 {
			continue
		}
		if t >= 1 && dy > 0 {
			continue
		}
		pt := e.PointAt(t)
		if pt.X <= x {
			continue
		}
		if dy > 0 {
			winding++
		} else if dy < 0 {
			winding--
		}
	}
	return winding
}

// scanlineParams returns the parameters in [0, 1] where the edge
// crosses the horizontal line at the given y.
func (e *Edge) scanlineParams(y float64) []float64 {
	switch e.Kind {
	case EdgeLinear:
		y0 := e.Points[0].Y
		y1 := e.Points[1].Y
		return solveLinear(y1-y0, y0-y)
	case EdgeQuadratic:
		y0 := e.Points[0].Y
		y1 := e.Points[1].Y
		y2 := e.Points[2].Y
		// y(t) = (y0-2y1+y2)t^2 + 2(y1-y0)t + y0
		return solveQuadratic(y0-2*y1+y2, 2*(y1-y0), y0-y)
	case EdgeCubic:
		y0 := e.Points[0].Y
		y1 := e.Points[1].Y
		y2 := e.Points[2].Y
		y3 := e.Points[3].Y
		// y(t) = (-y0+3y1-3y2+y3)t^3 + 3(y0-2y1+y2)t^2 + 3(y1-y0)t + y0
		return solveCubic(-y0+3*y1-3*y2+y3, 3*(y0-2*y1+y2), 3*(y1-y0), y0-y)
	default:
		return nil
	}
}

// Bounds returns the bounding box of the edge.
func (e *Edge) Bounds() Rect {
	switch e.Kind {
	case EdgeLinear:
		return linearBounds(e.Points[0], e.Points[1])
	case EdgeQuadratic:
		return quadraticBounds(e.Points[0], e.Points[1], e.Points[2])
	case EdgeCubic:
		return cubicBounds(e.Points[0], e.Points[1], e.Points[2], e.Points[3])
	default:
		return Rect{}
	}
}

// evalQuadratic evaluates a quadratic Bezier curve at parameter t.
func evalQuadratic(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	// B(t) = (1-t)^2*P0 + 2*(1-t)*t*P1 + t^2*P2
	return Point{
		u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

// evalCubic evaluates a cubic Bezier curve at parameter t.
func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	u2 := u * u
	t2 := t * t
	// B(t) = (1-t)^3*P0 + 3*(1-t)^2*t*P1 + 3*(1-t)*t^2*P2 + t^3*P3
	return Point{
		u*u2*p0.X + 3*u2*t*p1.X + 3*u*t2*p2.X + t*t2*p3.X,
		u*u2*p0.Y + 3*u2*t*p1.Y + 3*u*t2*p2.Y + t*t2*p3.Y,
	}
}

// quadraticDerivative returns the derivative of a quadratic Bezier at t.
func quadraticDerivative(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	// B'(t) = 2*(1-t)*(P1-P0) + 2*t*(P2-P1)
	return Point{
		2*u*(p1.X-p0.X) + 2*t*(p2.X-p1.X),
		2*u*(p1.Y-p0.Y) + 2*t*(p2.Y-p1.Y),
	}
}

// cubicDerivative returns the derivative of a cubic Bezier at t.
func cubicDerivative(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	// B'(t) = 3*(1-t)^2*(P1-P0) + 6*(1-t)*t*(P2-P1) + 3*t^2*(P3-P2)
	return Point{
		3*u*u*(p1.X-p0.X) + 6*u*t*(p2.X-p1.X) + 3*t*t*(p3.X-p2.X),
		3*u*u*(p1.Y-p0.Y) + 6*u*t*(p2.Y-p1.Y) + 3*t*t*(p3.Y-p2.Y),
	}
}

// cubicSecondDerivative returns the second derivative of a cubic Bezier at t.
func cubicSecondDerivative(p0, p1, p2, p3 Point, t float64) Point {
	// B''(t) = 6*(1-t)*(P2-2*P1+P0) + 6*t*(P3-2*P2+P1)
	a := p2.Sub(p1.Mul(2)).Add(p0)
	b := p3.Sub(p2.Mul(2)).Add(p1)
	u := 1 - t
	return a.Mul(6 * u).Add(b.Mul(6 * t))
}

// linearDistance calculates the distance candidate from p to segment a-b.
func linearDistance(a, b, p Point) (EdgeDistance, float64) {
	ab := b.Sub(a)
	ap := p.Sub(a)

	abLenSq := ab.LengthSquared()
	if abLenSq == 0 {
		// Degenerate segment - both points coincide
		return EdgeDistance{Distance: ap.Length(), Dot: 0}, 0
	}

	t := ap.Dot(ab) / abLenSq
	clamped := t
	if clamped < 0 {
		clamped = 0
	} else if clamped > 1 {
		clamped = 1
	}

	closest := a.Add(ab.Mul(clamped))
	diff := p.Sub(closest)
	dist := diff.Length()

	var dot float64
	if clamped == 0 || clamped == 1 {
		dot = math.Abs(ab.Normalized().Dot(diff.Normalized()))
	}

	return EdgeDistance{Distance: dist, Dot: dot}, clamped
}

// quadraticDistance calculates the distance candidate from p to a
// quadratic Bezier by solving the cubic derivative of squared distance.
func quadraticDistance(p0, p1, p2, p Point) (EdgeDistance, float64) {
	// Transform so p is at origin
	qa := p0.Sub(p)
	qb := p1.Sub(p)
	qc := p2.Sub(p)

	// Coefficients of the Bezier curve: B(t) = a*t^2 + b*t + c
	a := qa.Sub(qb.Mul(2)).Add(qc)
	b := qb.Sub(qa).Mul(2)
	c := qa

	// d(dist^2)/dt = 0 leads to a cubic equation.
	c3 := 2 * a.Dot(a)
	c2 := 3 * a.Dot(b)
	c1 := 2*a.Dot(c) + b.Dot(b)
	c0 := b.Dot(c)

	roots := solveCubic(c3, c2, c1, c0)

	best := Infinite()
	bestT := 0.0

	check := func(t float64) {
		if t < 0 || t > 1 {
			return
		}
		pt := evalQuadratic(p0, p1, p2, t)
		diff := p.Sub(pt)
		dist := diff.Length()

		var dot float64
		if t == 0 || t == 1 {
			tangent := quadraticDerivative(p0, p1, p2, t)
			dot = math.Abs(tangent.Normalized().Dot(diff.Normalized()))
		}

		cand := EdgeDistance{Distance: dist, Dot: dot}
		if cand.IsCloserThan(best) {
			best = cand
			bestT = t
		}
	}

	check(0)
	check(1)
	for _, t := range roots {
		check(t)
	}

	return best, bestT
}

// cubicDistance calculates the distance candidate from p to a cubic
// Bezier using sampled starting points refined by Newton's method.
func cubicDistance(p0, p1, p2, p3, p Point) (EdgeDistance, float64) {
	best := Infinite()
	bestT := 0.0

	check := func(t float64) {
		if t < 0 || t > 1 {
			return
		}
		pt := evalCubic(p0, p1, p2, p3, t)
		diff := p.Sub(pt)
		dist := diff.Length()

		var dot float64
		if t == 0 || t == 1 {
			tangent := cubicDerivative(p0, p1, p2, p3, t)
			dot = math.Abs(tangent.Normalized().Dot(diff.Normalized()))
		}

		cand := EdgeDistance{Distance: dist, Dot: dot}
		if cand.IsCloserThan(best) {
			best = cand
			bestT = t
		}
	}

	check(0)
	check(1)

	// Subdivision with Newton refinement is more robust than pure
	// Newton iteration on the quintic.
	const numSamples = 8
	for i := 0; i <= numSamples; i++ {
		t := float64(i) / float64(numSamples)
		t = newtonRefineCubic(p0, p1, p2, p3, p, t)
		check(t)
	}

	return best, bestT
}

// newtonRefineCubic refines a parameter t using Newton's method on the
// derivative of squared distance.
func newtonRefineCubic(p0, p1, p2, p3, p Point, t float64) float64 {
	const maxIter = 8
	const epsilon = 1e-10

	for i := 0; i < maxIter; i++ {
		pt := evalCubic(p0, p1, p2, p3, t)
		diff := pt.Sub(p)

		d1 := cubicDerivative(p0, p1, p2, p3, t)
		d2 := cubicSecondDerivative(p0, p1, p2, p3, t)

		// f(t) = diff.Dot(d1), f'(t) = d1.Dot(d1) + diff.Dot(d2)
		f := diff.Dot(d1)
		fp := d1.Dot(d1) + diff.Dot(d2)

		if math.Abs(fp) < epsilon {
			break
		}

		dt := -f / fp
		if math.Abs(dt) < epsilon {
			break
		}

		t += dt
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}

	return t
}

// solveCubic solves a*x^3 + b*x^2 + c*x + d = 0.
// Returns real roots in [0, 1].
func solveCubic(a, b, c, d float64) []float64 {
	if math.Abs(a) < 1e-14 {
		return solveQuadratic(b, c, d)
	}
	return solveCubicCardano(a, b, c, d)
}

// solveCubicCardano uses Cardano's method to solve a cubic equation.
func solveCubicCardano(a, b, c, d float64) []float64 {
	// Normalize coefficients
	b /= a
	c /= a
	d /= a

	// Depress the cubic
	p := c - b*b/3
	q := d - b*c/3 + 2*b*b*b/27
	discriminant := q*q/4 + p*p*p/27

	switch {
	case discriminant > 1e-14:
		return cubicOneRoot(q, discriminant, b)
	case discriminant < -1e-14:
		return cubicThreeRoots(p, q, b)
	default:
		return cubicRepeatedRoots(q, b)
	}
}

// cubicOneRoot handles the case with one real root.
func cubicOneRoot(q, discriminant, b float64) []float64 {
	var roots []float64
	sqrtD := math.Sqrt(discriminant)
	u := cbrt(-q/2 + sqrtD)
	v := cbrt(-q/2 - sqrtD)
	root := u + v - b/3
	if root >= 0 && root <= 1 {
		roots = append(roots, root)
	}
	return roots
}

// cubicThreeRoots handles the case with three real roots.
func cubicThreeRoots(p, q, b float64) []float64 {
	var roots []float64
	r := math.Sqrt(-p * p * p / 27)
	phi := math.Acos(-q / (2 * r))
	cubeRootR := math.Pow(r, 1.0/3.0)

	for k := 0; k < 3; k++ {
		root := 2*cubeRootR*math.Cos((phi+float64(2*k)*math.Pi)/3) - b/3
		if root >= 0 && root <= 1 {
			roots = append(roots, root)
		}
	}
	return roots
}

// cubicRepeatedRoots handles the case with repeated roots.
func cubicRepeatedRoots(q, b float64) []float64 {
	var roots []float64
	u := cbrt(-q / 2)
	root1 := 2*u - b/3
	root2 := -u - b/3

	if root1 >= 0 && root1 <= 1 {
		roots = append(roots, root1)
	}
	if root2 >= 0 && root2 <= 1 && math.Abs(root1-root2) > 1e-10 {
		roots = append(roots, root2)
	}
	return roots
}

// solveQuadratic solves a*x^2 + b*x + c = 0.
// Returns real roots in [0, 1].
func solveQuadratic(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-14 {
		return solveLinear(b, c)
	}

	var roots []float64
	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return roots
	}

	sqrtD := math.Sqrt(discriminant)
	root1 := (-b + sqrtD) / (2 * a)
	root2 := (-b - sqrtD) / (2 * a)

	if root1 >= 0 && root1 <= 1 {
		roots = append(roots, root1)
	}
	if root2 >= 0 && root2 <= 1 && math.Abs(root1-root2) > 1e-10 {
		roots = append(roots, root2)
	}
	return roots
}

// solveLinear solves b*x + c = 0.
// Returns the real root if it lies in [0, 1].
func solveLinear(b, c float64) []float64 {
	var roots []float64
	if math.Abs(b) >= 1e-14 {
		root := -c / b
		if root >= 0 && root <= 1 {
			roots = append(roots, root)
		}
	}
	return roots
}

// cbrt returns the cube root of x (handles negative values).
func cbrt(x float64) float64 {
	if x < 0 {
		return -math.Pow(-x, 1.0/3.0)
	}
	return math.Pow(x, 1.0/3.0)
}

// linearBounds returns the bounding box of a line segment.
func linearBounds(a, b Point) Rect {
	return Rect{
		MinX: min(a.X, b.X),
		MinY: min(a.Y, b.Y),
		MaxX: max(a.X, b.X),
		MaxY: max(a.Y, b.Y),
	}
}

// quadraticBounds returns the bounding box of a quadratic Bezier.
func quadraticBounds(p0, p1, p2 Point) Rect {
	bounds := linearBounds(p0, p2)

	// Extrema where B'(t) = 0: t = (p0-p1)/(p0-2*p1+p2) per axis
	dx := p0.X - 2*p1.X + p2.X
	if math.Abs(dx) > 1e-10 {
		t := (p0.X - p1.X) / dx
		if t > 0 && t < 1 {
			x := evalQuadratic(p0, p1, p2, t).X
			bounds.MinX = min(bounds.MinX, x)
			bounds.MaxX = max(bounds.MaxX, x)
		}
	}

	dy := p0.Y - 2*p1.Y + p2.Y
	if math.Abs(dy) > 1e-10 {
		t := (p0.Y - p1.Y) / dy
		if t > 0 && t < 1 {
			y := evalQuadratic(p0, p1, p2, t).Y
			bounds.MinY = min(bounds.MinY, y)
			bounds.MaxY = max(bounds.MaxY, y)
		}
	}

	return bounds
}

// cubicBounds returns the bounding box of a cubic Bezier.
func cubicBounds(p0, p1, p2, p3 Point) Rect {
	bounds := linearBounds(p0, p3)

	// B'(t) is a quadratic in t per axis; extend bounds at its roots.
	ax := -p0.X + 3*p1.X - 3*p2.X + p3.X
	bx := 2*p0.X - 4*p1.X + 2*p2.X
	cx := -p0.X + p1.X

	for _, t := range solveQuadratic(ax, bx, cx) {
		if t > 0 && t < 1 {
			x := evalCubic(p0, p1, p2, p3, t).X
			bounds.MinX = min(bounds.MinX, x)
			bounds.MaxX = max(bounds.MaxX, x)
		}
	}

	ay := -p0.Y + 3*p1.Y - 3*p2.Y + p3.Y
	by := 2*p0.Y - 4*p1.Y + 2*p2.Y
	cy := -p0.Y + p1.Y

	for _, t := range solveQuadratic(ay, by, cy) {
		if t > 0 && t < 1 {
			y := evalCubic(p0, p1, p2, p3, t).Y
			bounds.MinY = min(bounds.MinY, y)
			bounds.MaxY = max(bounds.MaxY, y)
		}
	}

	return bounds
}
