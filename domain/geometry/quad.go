package geometry

import "math"

// Point is a 2D point. Whether coordinates are frame pixels or view points is
// implicit in context; callers must not mix the two spaces.
type Point struct {
	X, Y float64
}

// Distance returns the Euclidean distance to other.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Size is a width/height extent.
type Size struct {
	Width, Height float64
}

// Swapped returns the size with width and height exchanged.
func (s Size) Swapped() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// Applying maps the extent through the linear part of m.
func (s Size) Applying(m Matrix) Size {
	w, h := m.TransformVector(s.Width, s.Height)
	return Size{Width: w, Height: h}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Origin Point
	Size   Size
}

// Center returns the rectangle's center point.
func (r Rect) Center() Point {
	return Point{
		X: r.Origin.X + r.Size.Width/2,
		Y: r.Origin.Y + r.Size.Height/2,
	}
}

// Applying maps the rectangle through m and returns the axis-aligned bounding
// rectangle of the four transformed corners.
func (r Rect) Applying(m Matrix) Rect {
	corners := [4]Point{
		r.Origin,
		{X: r.Origin.X + r.Size.Width, Y: r.Origin.Y},
		{X: r.Origin.X, Y: r.Origin.Y + r.Size.Height},
		{X: r.Origin.X + r.Size.Width, Y: r.Origin.Y + r.Size.Height},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x, y := m.TransformPoint(c.X, c.Y)
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return Rect{
		Origin: Point{X: minX, Y: minY},
		Size:   Size{Width: maxX - minX, Height: maxY - minY},
	}
}

// Contains reports whether p lies inside r (inclusive edges).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X <= r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y <= r.Origin.Y+r.Size.Height
}

// Quadrilateral is a candidate document boundary: four corners in the fixed
// order top-left, top-right, bottom-left, bottom-right. It is an immutable
// value; transforms return a new quadrilateral.
type Quadrilateral struct {
	TopLeft     Point
	TopRight    Point
	BottomLeft  Point
	BottomRight Point
}

// QuadForSize returns the quadrilateral spanning the full extent of s.
func QuadForSize(s Size) Quadrilateral {
	return Quadrilateral{
		TopLeft:     Point{X: 0, Y: 0},
		TopRight:    Point{X: s.Width, Y: 0},
		BottomLeft:  Point{X: 0, Y: s.Height},
		BottomRight: Point{X: s.Width, Y: s.Height},
	}
}

// Apply maps every corner through every transform, in list order. An empty
// list returns q unchanged. Degenerate (zero-area) quadrilaterals pass
// through like any other point set.
func (q Quadrilateral) Apply(transforms ...Matrix) Quadrilateral {
	out := q
	for _, m := range transforms {
		out.TopLeft.X, out.TopLeft.Y = m.TransformPoint(out.TopLeft.X, out.TopLeft.Y)
		out.TopRight.X, out.TopRight.Y = m.TransformPoint(out.TopRight.X, out.TopRight.Y)
		out.BottomLeft.X, out.BottomLeft.Y = m.TransformPoint(out.BottomLeft.X, out.BottomLeft.Y)
		out.BottomRight.X, out.BottomRight.Y = m.TransformPoint(out.BottomRight.X, out.BottomRight.Y)
	}
	return out
}

// Points returns the corners in their fixed order.
func (q Quadrilateral) Points() [4]Point {
	return [4]Point{q.TopLeft, q.TopRight, q.BottomLeft, q.BottomRight}
}

// Path returns the corners in perimeter order for drawing a closed outline.
func (q Quadrilateral) Path() [4]Point {
	return [4]Point{q.TopLeft, q.TopRight, q.BottomRight, q.BottomLeft}
}

// BoundingBox returns the axis-aligned bounding rectangle of the corners.
func (q Quadrilateral) BoundingBox() Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range q.Points() {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{
		Origin: Point{X: minX, Y: minY},
		Size:   Size{Width: maxX - minX, Height: maxY - minY},
	}
}

// MaxCornerDistance returns the largest per-corner distance between q and
// other. Used to judge detection stability between consecutive frames.
func (q Quadrilateral) MaxCornerDistance(other Quadrilateral) float64 {
	a := q.Points()
	b := other.Points()
	max := 0.0
	for i := range a {
		if d := a[i].Distance(b[i]); d > max {
			max = d
		}
	}
	return max
}
