package field

import "math"

// Point is a 2D point in font units.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p * scalar.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (z-component of the 3D cross).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared length (avoids sqrt).
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Normalized returns a unit vector in the same direction.
// Returns the zero vector if the length is zero.
func (p Point) Normalized() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{p.X / length, p.Y / length}
}

// Lerp returns the linear interpolation between p and q: p + t*(q-p).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		p.X + t*(q.X-p.X),
		p.Y + t*(q.Y-p.Y),
	}
}

// AngleBetween returns the angle between two vectors in radians [0, pi].
func AngleBetween(a, b Point) float64 {
	dot := a.Dot(b)
	lenA := a.Length()
	lenB := b.Length()
	if lenA == 0 || lenB == 0 {
		return 0
	}
	cosAngle := dot / (lenA * lenB)
	// Clamp to [-1, 1] to handle floating point errors
	if cosAngle > 1 {
		cosAngle = 1
	}
	if cosAngle < -1 {
		cosAngle = -1
	}
	return math.Acos(cosAngle)
}

// Rect is an axis-aligned 2D rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Expand returns a rectangle grown by the given margin on all sides.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		MinX: r.MinX - margin,
		MinY: r.MinY - margin,
		MaxX: r.MaxX + margin,
		MaxY: r.MaxY + margin,
	}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		MinX: min(r.MinX, s.MinX),
		MinY: min(r.MinY, s.MinY),
		MaxX: max(r.MaxX, s.MaxX),
		MaxY: max(r.MaxY, s.MaxY),
	}
}

// EdgeDistance is a distance candidate from a query point to an edge:
// the distance magnitude plus the orthogonality value used to break
// ties between edges that meet at a shared endpoint.
type EdgeDistance struct {
	// Distance is the distance magnitude to the edge.
	Distance float64

	// Dot measures how far from perpendicular the connecting vector is
	// at an edge endpoint. Lower wins when distances are equal, which
	// keeps the field continuous across edge joins.
	Dot float64
}

// Infinite returns a distance candidate farther than any real one.
func Infinite() EdgeDistance {
	return EdgeDistance{Distance: math.MaxFloat64, Dot: 0}
}

// IsCloserThan reports whether d is a better candidate than other.
func (d EdgeDistance) IsCloserThan(other EdgeDistance) bool {
	if d.Distance < other.Distance {
		return true
	}
	if d.Distance > other.Distance {
		return false
	}
	// Equal distance - the edge whose connecting vector is closer to
	// perpendicular wins.
	return d.Dot < other.Dot
}

// Combine returns the closer of the two candidates.
func (d EdgeDistance) Combine(other EdgeDistance) EdgeDistance {
	if d.IsCloserThan(other) {
		return d
	}
	return other
}
